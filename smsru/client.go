package smsru

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joeshaw/envdecode"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru/internal/wire"
)

// ErrCredentialsNotFound is returned by NewFromEnv when neither SMSRU_API_ID
// nor SMSRU_LOGIN and SMSRU_PASSWORD are set.
var ErrCredentialsNotFound = errors.New("smsru: SMSRU_API_ID or SMSRU_LOGIN/SMSRU_PASSWORD environment variables not set")

// EnvConfig is the environment read by NewFromEnv.
type EnvConfig struct {
	APIID    string        `env:"SMSRU_API_ID"`
	Login    string        `env:"SMSRU_LOGIN"`
	Password string        `env:"SMSRU_PASSWORD"`
	BaseURL  string        `env:"SMSRU_BASE_URL,default=https://sms.ru"`
	Timeout  time.Duration `env:"SMSRU_TIMEOUT,default=30s"`
}

// Auth builds credentials from the environment. SMSRU_API_ID wins when
// both forms are set.
func (e EnvConfig) Auth() (core.Auth, error) {
	if strings.TrimSpace(e.APIID) != "" {
		id, err := core.NewAPIID(e.APIID)
		if err != nil {
			return core.Auth{}, err
		}
		return core.APIIDAuth(id), nil
	}
	if strings.TrimSpace(e.Login) == "" && e.Password == "" {
		return core.Auth{}, ErrCredentialsNotFound
	}
	login, err := core.NewLogin(e.Login)
	if err != nil {
		return core.Auth{}, err
	}
	password, err := core.NewPassword(e.Password)
	if err != nil {
		return core.Auth{}, err
	}
	return core.LoginAuth(login, password), nil
}

// NewFromEnv creates a client from SMSRU_* environment variables. Options
// are applied after the environment, so they take precedence:
//
//	client, err := smsru.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.Balance(ctx)
func NewFromEnv(opts ...Option) (*Client, error) {
	var env EnvConfig
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	auth, err := env.Auth()
	if err != nil {
		return nil, err
	}
	base := []Option{WithBaseURL(env.BaseURL), WithTimeout(env.Timeout)}
	return New(auth, append(base, opts...)...), nil
}

// Client calls the SMS.RU HTTP API. Client is safe for concurrent use.
type Client struct {
	auth      core.Auth
	config    Config
	transport Transport
	telemetry core.TelemetryHook
	logger    *slog.Logger
}

// New creates a client with the given credentials and options.
func New(auth core.Auth, opts ...Option) *Client {
	cfg := Config{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{auth: auth, config: cfg, transport: cfg.Transport, telemetry: cfg.Telemetry, logger: cfg.Logger}
	if c.transport == nil {
		c.transport = &HTTPTransport{Client: cfg.HTTPClient, UserAgent: cfg.UserAgent}
	}
	if len(cfg.Middleware) > 0 {
		c.transport = Chain(cfg.Middleware...)(c.transport)
	}
	if c.telemetry == nil {
		c.telemetry = core.NoopTelemetryHook{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// URL returns the address a method is posted to.
func (c *Client) URL(endpoint Endpoint) string {
	if u, ok := c.config.EndpointURLs[endpoint]; ok {
		return u
	}
	return strings.TrimRight(c.config.BaseURL, "/") + "/" + string(endpoint)
}

// response is satisfied by every decoded response type.
type response interface {
	Head() core.Envelope
}

// call describes one API invocation.
type call[R response] struct {
	endpoint Endpoint
	mode     core.JSONMode
	validate func() error
	form     func() wire.Form
	decode   func(body []byte) (R, error)
}

// do validates, encodes, posts and decodes a call. Every failure is a
// *core.ClientError.
func do[R response](ctx context.Context, c *Client, k call[R]) (R, error) {
	var zero R
	requestID := uuid.NewString()
	start := time.Now()
	end := core.RequestEndEvent{Method: string(k.endpoint), RequestID: requestID, Start: start}
	finish := func(err error) {
		end.End = time.Now()
		end.Err = err
		c.telemetry.OnRequestEnd(end)
	}

	c.telemetry.OnRequestStart(core.RequestStartEvent{Method: string(k.endpoint), RequestID: requestID, Start: start})

	if c.auth.IsZero() {
		err := newValidationError(k.endpoint, requestID, &core.ValidationError{Field: core.FieldAPIID, Reason: "no credentials", Err: core.ErrEmptyValue})
		finish(err)
		return zero, err
	}
	if k.validate != nil {
		if verr := k.validate(); verr != nil {
			err := newValidationError(k.endpoint, requestID, verr)
			finish(err)
			return zero, err
		}
	}
	if k.mode == core.JSONModePlain {
		err := newUnsupportedFormatError(k.endpoint, requestID)
		finish(err)
		return zero, err
	}

	form := append(wire.EncodeAuth(c.auth), k.form()...)

	if c.config.Timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
			defer cancel()
		}
	}

	url := c.URL(k.endpoint)
	resp, err := post(ctx, c, k, url, form.Encode(), requestID, &end)
	finish(err)
	if err != nil {
		return zero, err
	}
	return resp, nil
}

// post submits an encoded call and decodes the reply.
func post[R response](ctx context.Context, c *Client, k call[R], url, payload, requestID string, end *core.RequestEndEvent) (R, error) {
	var zero R
	c.logger.DebugContext(ctx, "posting form",
		slog.String("method", string(k.endpoint)),
		slog.String("request_id", requestID),
		slog.String("url", url),
		slog.String("auth", c.auth.String()),
	)

	status, body, err := c.transport.PostForm(ctx, url, payload)
	if err != nil {
		return zero, newTransportError(k.endpoint, requestID, err)
	}
	end.HTTPStatus = status

	if status < 200 || status > 299 {
		return zero, newHTTPStatusError(k.endpoint, requestID, status, body)
	}

	resp, err := k.decode(body)
	if err != nil {
		return zero, newParseError(k.endpoint, requestID, status, err)
	}

	env := resp.Head()
	end.StatusCode = env.StatusCode
	if !env.OK() {
		return zero, newAPIError(k.endpoint, requestID, status, env)
	}
	return resp, nil
}
