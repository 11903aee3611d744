// Package config handles CLI configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultProfile is used when neither the flag nor the file names one.
const DefaultProfile = "default"

// DefaultRegion is used to parse phone numbers written without a country code.
const DefaultRegion = "RU"

// Config represents the CLI configuration.
type Config struct {
	DefaultProfile string                   `yaml:"default_profile"`
	Region         string                   `yaml:"region,omitempty"`
	Profiles       map[string]ProfileConfig `yaml:"profiles"`
}

// ProfileConfig holds the credentials and defaults of one SMS.RU account.
// Secrets are never stored here, only the keystore names that hold them.
type ProfileConfig struct {
	APIIDRef    string        `yaml:"api_id_ref,omitempty"`
	Login       string        `yaml:"login,omitempty"`
	PasswordRef string        `yaml:"password_ref,omitempty"`
	BaseURL     string        `yaml:"base_url,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	Sender      string        `yaml:"sender,omitempty"`
	Test        bool          `yaml:"test,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.smsru/config.yaml
// - Windows: %USERPROFILE%\.smsru\config.yaml
func DefaultConfigPath() string {
	homeDir := homeDir()
	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".smsru", "config.yaml")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns an empty config without error.
// Returns an error only if the file exists but cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Profiles: make(map[string]ProfileConfig),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]ProfileConfig)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// GetProfile returns the profile with the given name.
// Returns nil if the profile is not configured.
func (c *Config) GetProfile(name string) *ProfileConfig {
	if c.Profiles == nil {
		return nil
	}
	if pc, ok := c.Profiles[name]; ok {
		return &pc
	}
	return nil
}

// PhoneRegion returns the configured region or DefaultRegion.
func (c *Config) PhoneRegion() string {
	if c.Region == "" {
		return DefaultRegion
	}
	return c.Region
}
