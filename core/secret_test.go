package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestNewSecret(t *testing.T) {
	secret := NewSecret("my-api-id")
	if secret.value != "my-api-id" {
		t.Errorf("NewSecret() value = %q, want %q", secret.value, "my-api-id")
	}
}

func TestSecretString(t *testing.T) {
	secret := NewSecret("0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C")
	got := secret.String()
	want := "[REDACTED]"
	if got != want {
		t.Errorf("Secret.String() = %q, want %q", got, want)
	}
}

func TestSecretGoString(t *testing.T) {
	secret := NewSecret("0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C")
	got := secret.GoString()
	want := "core.Secret{[REDACTED]}"
	if got != want {
		t.Errorf("Secret.GoString() = %q, want %q", got, want)
	}
}

func TestSecretMarshalJSON(t *testing.T) {
	secret := NewSecret("0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C")
	got, err := secret.MarshalJSON()
	if err != nil {
		t.Fatalf("Secret.MarshalJSON() error = %v", err)
	}
	want := `"[REDACTED]"`
	if string(got) != want {
		t.Errorf("Secret.MarshalJSON() = %s, want %s", got, want)
	}
}

func TestSecretMarshalText(t *testing.T) {
	secret := NewSecret("0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C")
	got, err := secret.MarshalText()
	if err != nil {
		t.Fatalf("Secret.MarshalText() error = %v", err)
	}
	want := "[REDACTED]"
	if string(got) != want {
		t.Errorf("Secret.MarshalText() = %s, want %s", got, want)
	}
}

func TestSecretExpose(t *testing.T) {
	value := "0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C"
	secret := NewSecret(value)
	got := secret.Expose()
	if got != value {
		t.Errorf("Secret.Expose() = %q, want %q", got, value)
	}
}

func TestSecretIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty string", "", true},
		{"non-empty string", "A1B2C3D4", false},
		{"whitespace only", "  ", false}, // whitespace is not considered empty
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := NewSecret(tt.value)
			got := secret.IsEmpty()
			if got != tt.want {
				t.Errorf("Secret.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecretInFmtPrintf(t *testing.T) {
	secret := NewSecret("0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C")
	actualValue := "0E1D7C2B-4F3A-11EE-9C1B-7A2E6F1D0B3C"

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"%v", "%v", "[REDACTED]"},
		{"%s", "%s", "[REDACTED]"},
		{"%+v", "%+v", "[REDACTED]"},
		{"%#v", "%#v", "core.Secret{[REDACTED]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, secret)
			if got != tt.want {
				t.Errorf("fmt.Sprintf(%q, secret) = %q, want %q", tt.format, got, tt.want)
			}
			// Ensure actual value is never in output
			if got == actualValue || strings.Contains(got, actualValue) {
				t.Errorf("fmt.Sprintf(%q, secret) exposed actual value", tt.format)
			}
		})
	}
}

func TestSecretInStructPrinting(t *testing.T) {
	type Config struct {
		Name  string
		APIID Secret
	}

	cfg := Config{
		Name:  "test-config",
		APIID: NewSecret("A1B2C3D4-SMSRU-API-ID"),
	}
	actualValue := "A1B2C3D4-SMSRU-API-ID"

	tests := []struct {
		name   string
		format string
	}{
		{"%v", "%v"},
		{"%+v", "%+v"},
		{"%#v", "%#v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprintf(tt.format, cfg)
			if strings.Contains(got, actualValue) {
				t.Errorf("fmt.Sprintf(%q, config) exposed actual secret value: %s", tt.format, got)
			}
			if !strings.Contains(got, "REDACTED") {
				t.Errorf("fmt.Sprintf(%q, config) should contain REDACTED: %s", tt.format, got)
			}
		})
	}
}

func TestSecretJSONInStruct(t *testing.T) {
	type Config struct {
		Name  string `json:"name"`
		APIID Secret `json:"api_id"`
	}

	cfg := Config{
		Name:  "test-config",
		APIID: NewSecret("A1B2C3D4-SMSRU-API-ID"),
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	got := string(data)
	if strings.Contains(got, "A1B2C3D4-SMSRU-API-ID") {
		t.Errorf("json.Marshal() exposed actual secret value: %s", got)
	}
	if !strings.Contains(got, "[REDACTED]") {
		t.Errorf("json.Marshal() should contain [REDACTED]: %s", got)
	}

	// Verify valid JSON structure
	expected := `{"name":"test-config","api_id":"[REDACTED]"}`
	if got != expected {
		t.Errorf("json.Marshal() = %s, want %s", got, expected)
	}
}

func TestSecretEmptyValue(t *testing.T) {
	secret := NewSecret("")

	if secret.String() != "[REDACTED]" {
		t.Error("Empty secret should still return [REDACTED] for String()")
	}

	if !secret.IsEmpty() {
		t.Error("Empty secret should return true for IsEmpty()")
	}

	if secret.Expose() != "" {
		t.Error("Empty secret should return empty string for Expose()")
	}
}

func TestSecretWithSpecialCharacters(t *testing.T) {
	specialValues := []string{
		"key with spaces",
		"key\nwith\nnewlines",
		"key\twith\ttabs",
		`key"with"quotes`,
		"key<with>brackets",
		"key&with&ampersands",
		"emoji-key-\U0001F511",
	}

	for _, value := range specialValues {
		t.Run(value[:10]+"...", func(t *testing.T) {
			secret := NewSecret(value)

			// String should be redacted
			if secret.String() != "[REDACTED]" {
				t.Errorf("Secret.String() = %q, want [REDACTED]", secret.String())
			}

			// Expose should return exact value
			if secret.Expose() != value {
				t.Errorf("Secret.Expose() = %q, want %q", secret.Expose(), value)
			}
		})
	}
}

func TestCredentialsNeverPrinted(t *testing.T) {
	id, err := NewAPIID("  A1B2C3D4-SMSRU  ")
	if err != nil {
		t.Fatalf("NewAPIID() error = %v", err)
	}
	pw, err := NewPassword(" hunter2 ")
	if err != nil {
		t.Fatalf("NewPassword() error = %v", err)
	}
	login, err := NewLogin("user")
	if err != nil {
		t.Fatalf("NewLogin() error = %v", err)
	}

	for _, auth := range []Auth{APIIDAuth(id), LoginAuth(login, pw)} {
		for _, format := range []string{"%v", "%+v", "%#v", "%s"} {
			got := fmt.Sprintf(format, auth)
			if strings.Contains(got, "A1B2C3D4") || strings.Contains(got, "hunter2") {
				t.Errorf("fmt.Sprintf(%q, auth) exposed a credential: %s", format, got)
			}
		}
	}

	if id.Secret().Expose() != "A1B2C3D4-SMSRU" {
		t.Errorf("APIID not trimmed: %q", id.Secret().Expose())
	}
	if pw.Secret().Expose() != " hunter2 " {
		t.Errorf("Password whitespace not kept: %q", pw.Secret().Expose())
	}
}
