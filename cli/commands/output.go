package commands

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

// Exit codes
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
)

// exitError wraps an error with an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// fail reports err on stderr and returns it with an exit code.
func (a *App) fail(code int, errType string, err error) error {
	a.printError(errType, err)
	return exitWithCode(code, err)
}

// handleError reports a client error and maps it to an exit code.
func (a *App) handleError(err error) error {
	var clientErr *core.ClientError
	if errors.As(err, &clientErr) {
		if a.jsonOutput {
			a.outputErrorJSON(clientErr)
		} else {
			fmt.Fprintf(a.stderr, "Error: %v\n", clientErr)
			if errors.Is(err, core.ErrUnauthorized) {
				fmt.Fprintln(a.stderr, "  Check the api_id or login of the selected profile.")
			}
		}

		// Determine exit code based on error type
		switch {
		case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrUnsupportedFormat):
			return exitWithCode(ExitValidation, err)
		case errors.Is(err, core.ErrTransport):
			return exitWithCode(ExitNetwork, err)
		default:
			return exitWithCode(ExitProvider, err)
		}
	}

	if errors.Is(err, core.ErrValidation) {
		return a.fail(ExitValidation, "validation_error", err)
	}

	return a.fail(ExitProvider, "error", err)
}

// outputJSON writes v to stdout as indented JSON.
func (a *App) outputJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) outputErrorJSON(clientErr *core.ClientError) {
	body := map[string]any{
		"type":       errorType(clientErr),
		"message":    clientErr.Error(),
		"method":     clientErr.Method,
		"request_id": clientErr.RequestID,
	}
	if errors.Is(clientErr.Err, core.ErrAPI) {
		body["status_code"] = clientErr.Code
		body["status_text"] = clientErr.Text
	}
	if clientErr.HTTPStatus != 0 {
		body["http_status"] = clientErr.HTTPStatus
	}

	enc := json.NewEncoder(a.stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{"error": body})
}

func (a *App) printError(errType string, err error) {
	if !a.jsonOutput {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return
	}

	enc := json.NewEncoder(a.stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{
		"error": map[string]any{
			"type":    errType,
			"message": err.Error(),
		},
	})
}

func errorType(e *core.ClientError) string {
	switch {
	case errors.Is(e.Err, core.ErrValidation):
		return "validation_error"
	case errors.Is(e.Err, core.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(e.Err, core.ErrTransport):
		return "network_error"
	case errors.Is(e.Err, core.ErrHTTPStatus):
		return "http_error"
	case errors.Is(e.Err, core.ErrParse):
		return "parse_error"
	default:
		return "api_error"
	}
}
