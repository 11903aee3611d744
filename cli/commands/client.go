package commands

import (
	"errors"
	"fmt"

	"github.com/petal-labs/smsru-go/cli/config"
	"github.com/petal-labs/smsru-go/cli/keystore"
	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru"
)

// newClient resolves credentials for the selected profile and builds a
// client. Failures are already reported and carry an exit code.
func (a *App) newClient() (*smsru.Client, *config.ProfileConfig, error) {
	profile := a.cfg.GetProfile(a.profile)

	auth, err := a.resolveAuth(profile)
	if err != nil {
		return nil, nil, a.fail(ExitValidation, "credentials_error", err)
	}

	opts := []smsru.Option{smsru.WithLogger(a.logger)}
	if a.verbose {
		opts = append(opts, smsru.WithTelemetry(core.NewSlogTelemetryHook(a.logger)))
	}
	if profile != nil {
		if profile.BaseURL != "" {
			opts = append(opts, smsru.WithBaseURL(profile.BaseURL))
		}
		if profile.Timeout > 0 {
			opts = append(opts, smsru.WithTimeout(profile.Timeout))
		}
	} else {
		profile = &config.ProfileConfig{}
	}

	return a.createClient(auth, opts...), profile, nil
}

// resolveAuth prefers the profile's keystore references, then the
// environment, then a keystore entry named after the profile.
func (a *App) resolveAuth(profile *config.ProfileConfig) (core.Auth, error) {
	if profile != nil && (profile.APIIDRef != "" || profile.Login != "") {
		ks, err := a.newKeystore()
		if err != nil {
			return core.Auth{}, fmt.Errorf("failed to open keystore: %w", err)
		}
		return profileAuth(ks, a.profile, profile)
	}

	env, err := a.loadEnv()
	if err != nil {
		return core.Auth{}, fmt.Errorf("failed to read environment: %w", err)
	}
	auth, err := env.Auth()
	if err == nil {
		return auth, nil
	}
	if !errors.Is(err, smsru.ErrCredentialsNotFound) {
		return core.Auth{}, err
	}

	ks, kerr := a.newKeystore()
	if kerr != nil {
		return core.Auth{}, fmt.Errorf("failed to open keystore: %w", kerr)
	}
	secret, kerr := ks.Get(a.profile)
	if kerr != nil {
		if _, ok := kerr.(*keystore.ErrKeyNotFound); ok {
			return core.Auth{}, fmt.Errorf("no credentials for profile %q: run 'smsru keys set %s' or set SMSRU_API_ID", a.profile, a.profile)
		}
		return core.Auth{}, fmt.Errorf("failed to read keystore: %w", kerr)
	}
	id, err := core.NewAPIID(secret)
	if err != nil {
		return core.Auth{}, err
	}
	return core.APIIDAuth(id), nil
}

func profileAuth(ks keystore.Keystore, name string, profile *config.ProfileConfig) (core.Auth, error) {
	lookup := func(ref string) (string, error) {
		v, err := ks.Get(ref)
		if err != nil {
			if _, ok := err.(*keystore.ErrKeyNotFound); ok {
				return "", fmt.Errorf("profile %q references %q: run 'smsru keys set %s' first", name, ref, ref)
			}
			return "", fmt.Errorf("failed to read keystore: %w", err)
		}
		return v, nil
	}

	if profile.APIIDRef != "" {
		secret, err := lookup(profile.APIIDRef)
		if err != nil {
			return core.Auth{}, err
		}
		id, err := core.NewAPIID(secret)
		if err != nil {
			return core.Auth{}, err
		}
		return core.APIIDAuth(id), nil
	}

	login, err := core.NewLogin(profile.Login)
	if err != nil {
		return core.Auth{}, err
	}
	if profile.PasswordRef == "" {
		return core.Auth{}, fmt.Errorf("profile %q sets login without password_ref", name)
	}
	secret, err := lookup(profile.PasswordRef)
	if err != nil {
		return core.Auth{}, err
	}
	password, err := core.NewPassword(secret)
	if err != nil {
		return core.Auth{}, err
	}
	return core.LoginAuth(login, password), nil
}
