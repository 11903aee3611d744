package core

// Secret holds an SMS.RU credential (an api_id or an account password).
// Printing, %#v, JSON and text marshaling all show [REDACTED]; only Expose
// returns the value, and the client calls it solely to fill the form.
//
//	id := NewSecret("A1B2C3D4-0000-0000-0000-000000000000")
//	slog.Info("auth", "api_id", id) // api_id=[REDACTED]
//	form.Set("api_id", id.Expose())
type Secret struct {
	value string
}

const redacted = "[REDACTED]"

// NewSecret wraps value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String implements fmt.Stringer.
func (s Secret) String() string { return redacted }

// GoString implements fmt.GoStringer.
func (s Secret) GoString() string { return "core.Secret{" + redacted + "}" }

// MarshalJSON keeps credentials out of JSON output such as the CLI's --json.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// MarshalText keeps credentials out of yaml and other text encodings.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Expose returns the credential for the api_id or password form field.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether no credential is set.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
