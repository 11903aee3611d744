// Package otel traces SMS.RU calls with OpenTelemetry.
//
//	hook := otel.NewTracingHook(otel.WithTracerProvider(tp))
//	client := smsru.New(auth, smsru.WithTelemetry(hook))
//
// Each call becomes one client span named after the API method. Spans carry
// only the operational metadata the telemetry events expose.
package otel

import (
	"context"
	"sync"

	global "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/petal-labs/smsru-go/core"
)

// TracerName is the instrumentation scope of the spans.
const TracerName = "github.com/petal-labs/smsru-go"

// Span attribute keys.
const (
	AttrMethod     = attribute.Key("smsru.method")
	AttrRequestID  = attribute.Key("smsru.request_id")
	AttrStatusCode = attribute.Key("smsru.status_code")
	AttrHTTPStatus = attribute.Key("http.response.status_code")
)

// TracingHook implements core.TelemetryHook.
type TracingHook struct {
	tracer trace.Tracer
	parent func() context.Context

	mu    sync.Mutex
	spans map[string]trace.Span
}

// Option configures a TracingHook.
type Option func(*TracingHook)

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *TracingHook) {
		h.tracer = tp.Tracer(TracerName)
	}
}

// WithParent sets where spans get their parent from. The telemetry events
// carry no context, so spans are roots unless this is set.
func WithParent(parent func() context.Context) Option {
	return func(h *TracingHook) {
		h.parent = parent
	}
}

// NewTracingHook creates a hook using the global tracer provider by default.
func NewTracingHook(opts ...Option) *TracingHook {
	h := &TracingHook{
		parent: context.Background,
		spans:  make(map[string]trace.Span),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tracer == nil {
		h.tracer = global.GetTracerProvider().Tracer(TracerName)
	}
	return h
}

// OnRequestStart opens a span for the call.
func (h *TracingHook) OnRequestStart(e core.RequestStartEvent) {
	_, span := h.tracer.Start(h.parent(), e.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithTimestamp(e.Start),
		trace.WithAttributes(
			AttrMethod.String(e.Method),
			AttrRequestID.String(e.RequestID),
		),
	)

	h.mu.Lock()
	h.spans[e.RequestID] = span
	h.mu.Unlock()
}

// OnRequestEnd records the outcome and closes the span.
func (h *TracingHook) OnRequestEnd(e core.RequestEndEvent) {
	h.mu.Lock()
	span, ok := h.spans[e.RequestID]
	delete(h.spans, e.RequestID)
	h.mu.Unlock()
	if !ok {
		return
	}

	if e.HTTPStatus != 0 {
		span.SetAttributes(AttrHTTPStatus.Int(e.HTTPStatus))
	}
	if e.StatusCode != 0 {
		span.SetAttributes(AttrStatusCode.Int(int(e.StatusCode)))
	}
	if e.Err != nil {
		span.RecordError(e.Err)
		span.SetStatus(codes.Error, e.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(e.End))
}

// Pending reports the number of spans still open.
func (h *TracingHook) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.spans)
}

var _ core.TelemetryHook = (*TracingHook)(nil)
