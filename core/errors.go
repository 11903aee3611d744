package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ClientError is returned by every client call. Err is one of the kind
// sentinels below; Cause, when set, is the underlying failure.
type ClientError struct {
	Method     string
	RequestID  string
	HTTPStatus int
	Code       StatusCode
	Text       string
	Body       *string
	Err        error
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	var b strings.Builder
	b.WriteString("smsru: ")
	if e.Method != "" {
		b.WriteString(e.Method)
		b.WriteString(": ")
	}
	switch {
	case errors.Is(e.Err, ErrAPI):
		fmt.Fprintf(&b, "api error (status_code=%d", e.Code)
		if e.Text != "" {
			fmt.Fprintf(&b, ", status_text=%q", e.Text)
		}
		b.WriteString(")")
	case errors.Is(e.Err, ErrHTTPStatus):
		fmt.Fprintf(&b, "unexpected http status %d", e.HTTPStatus)
		if e.Body != nil {
			fmt.Fprintf(&b, ": %s", truncate(*e.Body, 200))
		}
	default:
		b.WriteString(e.Err.Error())
		if e.Cause != nil {
			b.WriteString(": ")
			b.WriteString(e.Cause.Error())
		}
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request_id=%s)", e.RequestID)
	}
	return b.String()
}

// Unwrap returns the kind sentinel and the cause for error chaining.
func (e *ClientError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Is matches ErrUnauthorized for credential failures reported either by
// status code or by HTTP status.
func (e *ClientError) Is(target error) bool {
	if target != ErrUnauthorized {
		return false
	}
	if e.Err == ErrAPI {
		return e.Code.IsAuthError()
	}
	return e.Err == ErrHTTPStatus &&
		(e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden)
}

// Client error kinds.
var (
	ErrTransport         = errors.New("transport error")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrAPI               = errors.New("api error")
	ErrParse             = errors.New("parse error")
	ErrUnsupportedFormat = errors.New("unsupported response format: only JSON is supported")
	ErrUnauthorized      = errors.New("unauthorized")
)

// DecodeError reports a response body that could not be mapped to a typed
// response. Err is one of the decode kinds below.
type DecodeError struct {
	Err   error
	Field string
	Value string
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": %q", e.Value)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the kind sentinel and the cause.
func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Decode error kinds.
var (
	// ErrMalformedResponse covers invalid JSON, a missing status or
	// status_code, and a status other than OK or ERROR.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnknownResponseKey means a per-item key matched no identifier of
	// the request that produced the response.
	ErrUnknownResponseKey = errors.New("unknown response key")
	// ErrInvalidResponseValue means a field failed its domain validation.
	ErrInvalidResponseValue = errors.New("invalid response value")
	// ErrInvalidScalar means a money or count field was neither a JSON
	// string nor a JSON number.
	ErrInvalidScalar = errors.New("invalid scalar")
)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
