package keystore

import (
	"crypto/sha256"
	"errors"
	"os"
)

// PassphraseEnvVar holds the keystore passphrase.
const PassphraseEnvVar = "SMSRU_KEYSTORE_PASSPHRASE"

// ErrNoMasterKey is returned when a source has nothing to offer.
var ErrNoMasterKey = errors.New("keystore: no master key available")

// MasterKeySource supplies the secret the file encryption key is derived from.
type MasterKeySource interface {
	GetMasterKey() ([]byte, error)
}

// StaticMasterKey is a fixed master key.
type StaticMasterKey []byte

// GetMasterKey implements MasterKeySource.
func (s StaticMasterKey) GetMasterKey() ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrNoMasterKey
	}
	return append([]byte(nil), s...), nil
}

// EnvMasterKey reads the master key from an environment variable.
type EnvMasterKey struct {
	Var string
}

// GetMasterKey implements MasterKeySource.
func (e EnvMasterKey) GetMasterKey() ([]byte, error) {
	v := os.Getenv(e.Var)
	if v == "" {
		return nil, ErrNoMasterKey
	}
	return []byte(v), nil
}

// MachineMasterKey derives a key from hostname and user name. It only
// keeps the file unreadable on other machines.
type MachineMasterKey struct{}

// GetMasterKey implements MasterKeySource.
func (MachineMasterKey) GetMasterKey() ([]byte, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	username := os.Getenv("USER")
	if username == "" {
		username = os.Getenv("USERNAME")
	}
	sum := sha256.Sum256([]byte(hostname + ":" + username + ":smsru-keystore"))
	return sum[:], nil
}

// FirstMasterKey tries each source in order and returns the first key.
type FirstMasterKey []MasterKeySource

// GetMasterKey implements MasterKeySource.
func (f FirstMasterKey) GetMasterKey() ([]byte, error) {
	for _, src := range f {
		key, err := src.GetMasterKey()
		if errors.Is(err, ErrNoMasterKey) {
			continue
		}
		return key, err
	}
	return nil, ErrNoMasterKey
}

// DefaultMasterKeySource prefers SMSRU_KEYSTORE_PASSPHRASE over the
// machine key.
func DefaultMasterKeySource() MasterKeySource {
	return FirstMasterKey{EnvMasterKey{Var: PassphraseEnvVar}, MachineMasterKey{}}
}
