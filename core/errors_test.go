package core

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestClientErrorAPIMessage(t *testing.T) {
	err := &ClientError{
		Method:    "sms/send",
		RequestID: "req_123",
		Code:      StatusCode(CodeInsufficientFunds),
		Text:      "Недостаточно средств",
		Err:       ErrAPI,
	}

	msg := err.Error()
	for _, want := range []string{"sms/send", "status_code=201", "Недостаточно средств", "req_123"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, should contain %q", msg, want)
		}
	}
	if !errors.Is(err, ErrAPI) {
		t.Error("errors.Is(err, ErrAPI) should be true")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("insufficient funds should not match ErrUnauthorized")
	}
}

func TestClientErrorWithoutRequestID(t *testing.T) {
	err := &ClientError{Method: "my/balance", HTTPStatus: 502, Err: ErrHTTPStatus}

	msg := err.Error()
	if !strings.Contains(msg, "502") {
		t.Errorf("Error() = %q, should contain status", msg)
	}
	if strings.Contains(msg, "request_id") {
		t.Errorf("Error() = %q, should not contain request_id when empty", msg)
	}
}

func TestClientErrorHTTPStatusBody(t *testing.T) {
	body := strings.Repeat("x", 500)
	err := &ClientError{HTTPStatus: 500, Body: &body, Err: ErrHTTPStatus}

	msg := err.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("long body should be truncated, got %d bytes", len(msg))
	}
}

func TestClientErrorUnwrapsCause(t *testing.T) {
	cause := &DecodeError{Err: ErrUnknownResponseKey, Field: "sms", Value: "70000000000"}
	err := &ClientError{Method: "sms/send", Err: ErrParse, Cause: cause}

	if !errors.Is(err, ErrParse) {
		t.Error("errors.Is(err, ErrParse) should be true")
	}
	if !errors.Is(err, ErrUnknownResponseKey) {
		t.Error("errors.Is(err, ErrUnknownResponseKey) should be true")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatal("errors.As(err, *DecodeError) should be true")
	}
	if decodeErr.Value != "70000000000" {
		t.Errorf("Value = %q, want 70000000000", decodeErr.Value)
	}
}

func TestClientErrorUnauthorized(t *testing.T) {
	tests := []struct {
		name string
		err  *ClientError
		want bool
	}{
		{"invalid api_id", &ClientError{Err: ErrAPI, Code: 200}, true},
		{"invalid token", &ClientError{Err: ErrAPI, Code: 300}, true},
		{"invalid auth", &ClientError{Err: ErrAPI, Code: 301}, true},
		{"not confirmed", &ClientError{Err: ErrAPI, Code: 302}, true},
		{"no route", &ClientError{Err: ErrAPI, Code: 207}, false},
		{"unknown code", &ClientError{Err: ErrAPI, Code: 999999}, false},
		{"http 401", &ClientError{Err: ErrHTTPStatus, HTTPStatus: http.StatusUnauthorized}, true},
		{"http 403", &ClientError{Err: ErrHTTPStatus, HTTPStatus: http.StatusForbidden}, true},
		{"http 500", &ClientError{Err: ErrHTTPStatus, HTTPStatus: http.StatusInternalServerError}, false},
		{"transport", &ClientError{Err: ErrTransport, Cause: errors.New("dial tcp")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, ErrUnauthorized); got != tt.want {
				t.Errorf("errors.Is(err, ErrUnauthorized) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Err: ErrInvalidResponseValue, Field: "callback", Value: "bad"}

	msg := err.Error()
	if !strings.Contains(msg, "invalid response value") || !strings.Contains(msg, `"bad"`) {
		t.Errorf("Error() = %q", msg)
	}
	if !errors.Is(err, ErrInvalidResponseValue) {
		t.Error("errors.Is(err, ErrInvalidResponseValue) should be true")
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Error("invalid value should be distinguishable from malformed payload")
	}
}

func TestSentinelErrorsAreDifferent(t *testing.T) {
	sentinels := []error{
		ErrTransport,
		ErrHTTPStatus,
		ErrAPI,
		ErrParse,
		ErrUnsupportedFormat,
		ErrUnauthorized,
		ErrValidation,
		ErrMalformedResponse,
		ErrUnknownResponseKey,
		ErrInvalidResponseValue,
		ErrInvalidScalar,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors should be distinct: %v == %v", a, b)
			}
		}
	}
}
