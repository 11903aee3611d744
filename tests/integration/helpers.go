//go:build integration

// Package integration runs live tests against sms.ru. Messages are sent in
// test mode, so nothing is delivered or charged.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru"
)

// isCI returns true if running in a CI environment.
// It checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "TRAVIS", "JENKINS_URL"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// skipOrFailOnMissing handles missing credentials.
// In CI environments, it fails loudly unless SMSRU_SKIP_INTEGRATION is set.
// In local development, it skips the test gracefully.
func skipOrFailOnMissing(t *testing.T, name string) {
	t.Helper()
	if isCI() && os.Getenv("SMSRU_SKIP_INTEGRATION") == "" {
		t.Fatalf("%s not set (CI environment detected; set SMSRU_SKIP_INTEGRATION=1 to skip)", name)
	}
	t.Skipf("%s not set", name)
}

// getAPIID returns SMSRU_API_ID or skips the test.
func getAPIID(t *testing.T) string {
	t.Helper()
	id := os.Getenv("SMSRU_API_ID")
	if id == "" {
		skipOrFailOnMissing(t, "SMSRU_API_ID")
	}
	return id
}

// getTestPhone returns SMSRU_TEST_PHONE or skips the test. The number must
// belong to the account owner.
func getTestPhone(t *testing.T) core.RawPhoneNumber {
	t.Helper()
	raw := os.Getenv("SMSRU_TEST_PHONE")
	if raw == "" {
		skipOrFailOnMissing(t, "SMSRU_TEST_PHONE")
	}
	phone, err := core.ParsePhoneNumber("RU", raw)
	if err != nil {
		t.Fatalf("SMSRU_TEST_PHONE: %v", err)
	}
	return phone.RawPhoneNumber()
}

// newClient builds a live client from SMSRU_API_ID.
func newClient(t *testing.T) *smsru.Client {
	t.Helper()
	id, err := core.NewAPIID(getAPIID(t))
	if err != nil {
		t.Fatalf("NewAPIID() error = %v", err)
	}
	return smsru.New(core.APIIDAuth(id))
}

// cliResult holds the result of running a CLI command.
type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the smsru CLI with the given arguments.
// It uses the pre-built binary from TestMain for efficiency.
func runCLI(t *testing.T, env []string, args ...string) cliResult {
	t.Helper()
	return runCLIWithStdin(t, env, "", args...)
}

// runCLIWithStdin executes the smsru CLI with stdin input. HOME points at a
// temporary directory so the user's config and keystore are never touched.
func runCLIWithStdin(t *testing.T, env []string, stdin string, args ...string) cliResult {
	t.Helper()

	binaryPath := getCliBinary()
	if binaryPath == "" {
		t.Fatal("CLI binary not built - TestMain may not have run")
	}

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+cliHome, "USERPROFILE="+cliHome)
	cmd.Env = append(cmd.Env, env...)
	cmd.Stdin = bytes.NewBufferString(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("Failed to run CLI: %v", err)
		}
	}

	return cliResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
