package smsru

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, url, form string) (int, []byte, error)

// PostForm implements Transport.
func (f TransportFunc) PostForm(ctx context.Context, url, form string) (int, []byte, error) {
	return f(ctx, url, form)
}

// Middleware wraps a Transport. It sees every request sent to the transport.
type Middleware func(next Transport) Transport

// Chain combines middleware; the first one is outermost.
func Chain(middlewares ...Middleware) Middleware {
	return func(next Transport) Transport {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// WithMiddleware wraps the transport, whether default or set with
// WithTransport. Repeated calls append.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Config) {
		c.Middleware = append(c.Middleware, middlewares...)
	}
}

// CircuitState is the state of a CircuitBreaker.
type CircuitState int

// Circuit states.
const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures NewCircuitBreaker.
type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive failures before opening
	SuccessThreshold int           // half-open successes before closing
	OpenDuration     time.Duration // how long to reject before probing
}

// DefaultCircuitBreakerConfig opens after 5 failures for 30 seconds.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenDuration:     30 * time.Second,
	}
}

// ErrCircuitOpen is the transport failure reported while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker open: too many failures")

// CircuitBreaker stops calling a failing API for a while. A transport error
// or a 5xx response counts as a failure; API status codes do not.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu        sync.Mutex
	state     CircuitState
	failures  int
	successes int
	openedAt  time.Time
}

// NewCircuitBreaker creates a closed breaker. Zero fields take the defaults.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	def := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = def.SuccessThreshold
	}
	if cfg.OpenDuration <= 0 {
		cfg.OpenDuration = def.OpenDuration
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// State returns the current state.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.advance()
	return cb.state
}

// Middleware returns the breaker as transport middleware.
func (cb *CircuitBreaker) Middleware() Middleware {
	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, url, form string) (int, []byte, error) {
			if !cb.allow() {
				return 0, nil, ErrCircuitOpen
			}
			status, body, err := next.PostForm(ctx, url, form)
			cb.record(err != nil || status >= 500)
			return status, body, err
		})
	}
}

// advance must be called with cb.mu held.
func (cb *CircuitBreaker) advance() {
	if cb.state == CircuitOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.OpenDuration {
		cb.state = CircuitHalfOpen
		cb.successes = 0
	}
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.advance()
	return cb.state != CircuitOpen
}

func (cb *CircuitBreaker) record(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if failed {
		cb.failures++
		if cb.state == CircuitHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
			cb.state = CircuitOpen
			cb.openedAt = cb.now()
		}
		return
	}

	if cb.state == CircuitHalfOpen {
		cb.successes++
		if cb.successes < cb.cfg.SuccessThreshold {
			return
		}
		cb.state = CircuitClosed
	}
	cb.failures = 0
}
