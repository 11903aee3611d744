package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestVersionText(t *testing.T) {
	ta := newTestApp(t, testOptions{})

	if err := ta.run("version"); err != nil {
		t.Fatalf("version error = %v", err)
	}

	out := ta.stdout.String()
	for _, want := range []string{
		"smsru " + Version,
		"commit:     " + Commit,
		"built:      " + BuildDate,
		"go version: " + runtime.Version(),
		"platform:   " + runtime.GOOS + "/" + runtime.GOARCH,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if len(ta.server.Requests()) != 0 {
		t.Error("version should not call the API")
	}
}

func TestVersionJSON(t *testing.T) {
	ta := newTestApp(t, testOptions{})

	if err := ta.run("--json", "version"); err != nil {
		t.Fatalf("version error = %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(ta.stdout.Bytes(), &out); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, ta.stdout)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"version", Version},
		{"commit", Commit},
		{"buildDate", BuildDate},
		{"goVersion", runtime.Version()},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
	}
	for _, tt := range tests {
		if out[tt.key] != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, out[tt.key], tt.want)
		}
	}
}

func TestVersionRejectsArgs(t *testing.T) {
	ta := newTestApp(t, testOptions{})

	err := ta.run("version", "extra")
	if code := exitCode(err); code != ExitValidation {
		t.Errorf("exit code = %d, want %d", code, ExitValidation)
	}
}
