package smsru

import (
	"strings"

	"github.com/petal-labs/smsru-go/core"
)

// newValidationError wraps a rejected request before anything is sent.
func newValidationError(method Endpoint, requestID string, err error) error {
	return &core.ClientError{
		Method:    string(method),
		RequestID: requestID,
		Err:       core.ErrValidation,
		Cause:     err,
	}
}

// newUnsupportedFormatError reports a request for the plain-text format.
func newUnsupportedFormatError(method Endpoint, requestID string) error {
	return &core.ClientError{
		Method:    string(method),
		RequestID: requestID,
		Err:       core.ErrUnsupportedFormat,
	}
}

// newTransportError creates a ClientError for network-related failures.
func newTransportError(method Endpoint, requestID string, err error) error {
	return &core.ClientError{
		Method:    string(method),
		RequestID: requestID,
		Err:       core.ErrTransport,
		Cause:     err,
	}
}

// newHTTPStatusError keeps the body unless it is blank.
func newHTTPStatusError(method Endpoint, requestID string, status int, body []byte) error {
	e := &core.ClientError{
		Method:     string(method),
		RequestID:  requestID,
		HTTPStatus: status,
		Err:        core.ErrHTTPStatus,
	}
	if text := string(body); strings.TrimSpace(text) != "" {
		e.Body = &text
	}
	return e
}

// newParseError creates a ClientError for bodies the decoders rejected.
func newParseError(method Endpoint, requestID string, status int, err error) error {
	return &core.ClientError{
		Method:     string(method),
		RequestID:  requestID,
		HTTPStatus: status,
		Err:        core.ErrParse,
		Cause:      err,
	}
}

// newAPIError converts an ERROR envelope.
func newAPIError(method Endpoint, requestID string, status int, env core.Envelope) error {
	return &core.ClientError{
		Method:     string(method),
		RequestID:  requestID,
		HTTPStatus: status,
		Code:       env.StatusCode,
		Text:       env.Text(),
		Err:        core.ErrAPI,
	}
}
