package core

// Auth holds SMS.RU credentials: either an api_id token or a login and
// password pair. The zero value has no credentials.
type Auth struct {
	apiID    APIID
	login    Login
	password Password
	hasAPIID bool
	hasLogin bool
}

// APIIDAuth authenticates with an api_id token.
func APIIDAuth(id APIID) Auth {
	return Auth{apiID: id, hasAPIID: true}
}

// LoginAuth authenticates with account login and password.
func LoginAuth(login Login, password Password) Auth {
	return Auth{login: login, password: password, hasLogin: true}
}

// APIID returns the token when Auth was built with APIIDAuth.
func (a Auth) APIID() (APIID, bool) {
	return a.apiID, a.hasAPIID
}

// LoginPassword returns the pair when Auth was built with LoginAuth.
func (a Auth) LoginPassword() (Login, Password, bool) {
	return a.login, a.password, a.hasLogin
}

// IsZero reports whether no credentials are set.
func (a Auth) IsZero() bool {
	return !a.hasAPIID && !a.hasLogin
}

// String never includes secrets.
func (a Auth) String() string {
	switch {
	case a.hasAPIID:
		return "api_id=" + a.apiID.Secret().String()
	case a.hasLogin:
		return "login=" + a.login.String() + " password=" + a.password.Secret().String()
	}
	return "none"
}
