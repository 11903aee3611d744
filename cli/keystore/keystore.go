// Package keystore provides encrypted storage for SMS.RU credentials.
package keystore

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
)

// Keystore defines the interface for secure key storage.
type Keystore interface {
	// Set stores a key-value pair.
	Set(name, value string) error
	// Get retrieves a value by name. Returns error if not found.
	Get(name string) (string, error)
	// Delete removes a key by name.
	Delete(name string) error
	// List returns all stored key names.
	List() ([]string, error)
}

// ErrKeyNotFound is returned when a requested key does not exist.
type ErrKeyNotFound struct {
	Name string
}

func (e *ErrKeyNotFound) Error() string {
	return "key not found: " + e.Name
}

// DefaultKeystorePath returns the default keystore file path.
// - macOS/Linux: ~/.smsru/keys.enc
// - Windows: %USERPROFILE%\.smsru\keys.enc
func DefaultKeystorePath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "keys.enc"
	}

	return filepath.Join(homeDir, ".smsru", "keys.enc")
}

// NewKeystore opens the default file keystore. The master key comes from
// SMSRU_KEYSTORE_PASSPHRASE when set, otherwise from machine identity.
func NewKeystore() (Keystore, error) {
	return NewFileKeystore(DefaultKeystorePath(), DefaultMasterKeySource())
}

// MemoryKeystore keeps keys in memory. It is meant for tests.
type MemoryKeystore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeystore returns an empty MemoryKeystore.
func NewMemoryKeystore() *MemoryKeystore {
	return &MemoryKeystore{data: make(map[string]string)}
}

// Set stores a key-value pair.
func (m *MemoryKeystore) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = value
	return nil
}

// Get retrieves a value by name.
func (m *MemoryKeystore) Get(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[name]
	if !ok {
		return "", &ErrKeyNotFound{Name: name}
	}
	return v, nil
}

// Delete removes a key by name.
func (m *MemoryKeystore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[name]; !ok {
		return &ErrKeyNotFound{Name: name}
	}
	delete(m.data, name)
	return nil
}

// List returns all stored key names, sorted.
func (m *MemoryKeystore) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

var (
	_ Keystore = (*FileKeystore)(nil)
	_ Keystore = (*MemoryKeystore)(nil)
)
