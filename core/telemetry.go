package core

import (
	"context"
	"log/slog"
	"time"
)

// TelemetryHook receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, tracing, etc.
//
// # Security Considerations
//
// Event types never include credentials, phone numbers or message text.
// Only operational metadata is exposed (method, request id, timing, codes).
// Keep it that way when adding fields.
type TelemetryHook interface {
	// OnRequestStart is called before the form is submitted.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called once the call has a result or an error.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Method    string    // API method path, e.g. "sms/send"
	RequestID string    // Client generated id, also set on ClientError
	Start     time.Time // When the request started
}

// RequestEndEvent contains metadata about a completed request.
//
// Err is the *ClientError returned to the caller, nil on success.
type RequestEndEvent struct {
	Method     string
	RequestID  string
	Start      time.Time
	End        time.Time
	HTTPStatus int        // 0 when no response was received
	StatusCode StatusCode // top-level status_code, 0 when not decoded
	Err        error
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// Use this as a default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

// SlogTelemetryHook writes request events to a structured logger.
type SlogTelemetryHook struct {
	Logger *slog.Logger
}

// NewSlogTelemetryHook logs request starts at debug and ends at info, or at
// warn when the call failed.
func NewSlogTelemetryHook(logger *slog.Logger) *SlogTelemetryHook {
	return &SlogTelemetryHook{Logger: logger}
}

// OnRequestStart logs the method and request id.
func (h *SlogTelemetryHook) OnRequestStart(e RequestStartEvent) {
	h.Logger.LogAttrs(context.Background(), slog.LevelDebug, "smsru request started",
		slog.String("method", e.Method),
		slog.String("request_id", e.RequestID),
	)
}

// OnRequestEnd logs the outcome and duration.
func (h *SlogTelemetryHook) OnRequestEnd(e RequestEndEvent) {
	attrs := []slog.Attr{
		slog.String("method", e.Method),
		slog.String("request_id", e.RequestID),
		slog.Duration("duration", e.Duration()),
		slog.Int("http_status", e.HTTPStatus),
		slog.Int("status_code", int(e.StatusCode)),
	}
	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	h.Logger.LogAttrs(context.Background(), level, "smsru request finished", attrs...)
}

// Compile-time checks.
var (
	_ TelemetryHook = NoopTelemetryHook{}
	_ TelemetryHook = (*SlogTelemetryHook)(nil)
)
