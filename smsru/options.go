package smsru

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/petal-labs/smsru-go/core"
)

// DefaultBaseURL is the SMS.RU API root.
const DefaultBaseURL = "https://sms.ru"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "smsru-go"

// Endpoint is an API method path relative to the base URL.
type Endpoint string

// SMS.RU API methods.
const (
	EndpointSendSMS             Endpoint = "sms/send"
	EndpointCheckCost           Endpoint = "sms/cost"
	EndpointCheckStatus         Endpoint = "sms/status"
	EndpointStartCallAuth       Endpoint = "callcheck/add"
	EndpointCheckCallAuthStatus Endpoint = "callcheck/status"
	EndpointCheckAuth           Endpoint = "auth/check"
	EndpointBalance             Endpoint = "my/balance"
	EndpointFreeUsage           Endpoint = "my/free"
	EndpointLimitUsage          Endpoint = "my/limit"
	EndpointSenders             Endpoint = "my/senders"
	EndpointAddStoplist         Endpoint = "stoplist/add"
	EndpointRemoveStoplist      Endpoint = "stoplist/del"
	EndpointStoplist            Endpoint = "stoplist/get"
	EndpointAddCallback         Endpoint = "callback/add"
	EndpointRemoveCallback      Endpoint = "callback/del"
	EndpointCallbacks           Endpoint = "callback/get"
)

// Endpoints lists every API method the client calls.
var Endpoints = []Endpoint{
	EndpointSendSMS,
	EndpointCheckCost,
	EndpointCheckStatus,
	EndpointStartCallAuth,
	EndpointCheckCallAuthStatus,
	EndpointCheckAuth,
	EndpointBalance,
	EndpointFreeUsage,
	EndpointLimitUsage,
	EndpointSenders,
	EndpointAddStoplist,
	EndpointRemoveStoplist,
	EndpointStoplist,
	EndpointAddCallback,
	EndpointRemoveCallback,
	EndpointCallbacks,
}

// Config holds configuration for the client.
type Config struct {
	// BaseURL is the API root. Defaults to https://sms.ru
	BaseURL string

	// EndpointURLs overrides the full URL of individual methods.
	EndpointURLs map[Endpoint]string

	// HTTPClient is used by the default transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Timeout bounds each call when the caller's context has no deadline.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// Transport replaces the net/http transport entirely.
	Transport Transport

	// Middleware wraps the transport, first outermost.
	Middleware []Middleware

	// Telemetry receives request lifecycle events.
	Telemetry core.TelemetryHook

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Option configures the client.
type Option func(*Config)

// WithBaseURL sets the API root every endpoint URL derives from.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithEndpointURL points a single method at url.
func WithEndpointURL(endpoint Endpoint, url string) Option {
	return func(c *Config) {
		if c.EndpointURLs == nil {
			c.EndpointURLs = make(map[Endpoint]string)
		}
		c.EndpointURLs[endpoint] = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTransport replaces the HTTP transport. HTTPClient and UserAgent are
// ignored when set.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		c.Transport = t
	}
}

// WithTelemetry sets the telemetry hook.
func WithTelemetry(hook core.TelemetryHook) Option {
	return func(c *Config) {
		c.Telemetry = hook
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
