package smsru

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/petal-labs/smsru-go/core"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type scriptedTransport struct {
	statuses []int
	errs     []error
	calls    int
}

func (s *scriptedTransport) PostForm(context.Context, string, string) (int, []byte, error) {
	i := min(s.calls, len(s.statuses)-1)
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return s.statuses[i], []byte(`{"status":"OK","status_code":100}`), err
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Transport) Transport {
			return TransportFunc(func(ctx context.Context, url, form string) (int, []byte, error) {
				order = append(order, name)
				return next.PostForm(ctx, url, form)
			})
		}
	}
	base := TransportFunc(func(context.Context, string, string) (int, []byte, error) {
		order = append(order, "transport")
		return http.StatusOK, nil, nil
	})

	_, _, err := Chain(mark("outer"), mark("inner"))(base).PostForm(context.Background(), "u", "f")
	be.Err(t, err, nil)
	be.Equal(t, order, []string{"outer", "inner", "transport"})
}

func TestCircuitBreakerOpensAndRecovers(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenDuration: time.Minute})
	cb.now = clock.now

	next := &scriptedTransport{statuses: []int{503, 503, 200}}
	tr := cb.Middleware()(next)
	ctx := context.Background()

	_, _, _ = tr.PostForm(ctx, "u", "f")
	be.Equal(t, cb.State(), CircuitClosed)
	_, _, _ = tr.PostForm(ctx, "u", "f")
	be.Equal(t, cb.State(), CircuitOpen)

	_, _, err := tr.PostForm(ctx, "u", "f")
	be.Err(t, err, ErrCircuitOpen)
	be.Equal(t, next.calls, 2)

	clock.advance(time.Minute)
	be.Equal(t, cb.State(), CircuitHalfOpen)

	status, _, err := tr.PostForm(ctx, "u", "f")
	be.Err(t, err, nil)
	be.Equal(t, status, http.StatusOK)
	be.Equal(t, cb.State(), CircuitClosed)
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenDuration: time.Second})
	cb.now = clock.now

	boom := errors.New("connection refused")
	tr := cb.Middleware()(&scriptedTransport{statuses: []int{0}, errs: []error{boom}})

	_, _, err := tr.PostForm(context.Background(), "u", "f")
	be.Err(t, err, boom)
	be.Equal(t, cb.State(), CircuitOpen)

	clock.advance(time.Second)
	_, _, err = tr.PostForm(context.Background(), "u", "f")
	be.Err(t, err, boom)
	be.Equal(t, cb.State(), CircuitOpen)
}

func TestCircuitBreakerIgnoresAPIErrors(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1})
	tr := cb.Middleware()(&scriptedTransport{statuses: []int{http.StatusOK}})

	for range 3 {
		_, _, err := tr.PostForm(context.Background(), "u", "f")
		be.Err(t, err, nil)
	}
	be.Equal(t, cb.State(), CircuitClosed)
}

func TestCircuitStateString(t *testing.T) {
	be.Equal(t, CircuitClosed.String(), "closed")
	be.Equal(t, CircuitOpen.String(), "open")
	be.Equal(t, CircuitHalfOpen.String(), "half-open")
	be.Equal(t, CircuitState(9).String(), "unknown")
}

func TestWithMiddlewareWrapsTransport(t *testing.T) {
	next := &scriptedTransport{statuses: []int{http.StatusOK}}
	var seen []string
	spy := func(inner Transport) Transport {
		return TransportFunc(func(ctx context.Context, url, form string) (int, []byte, error) {
			seen = append(seen, url)
			return inner.PostForm(ctx, url, form)
		})
	}
	id, err := core.NewAPIID("test-key")
	be.Err(t, err, nil)
	client := New(core.APIIDAuth(id), WithTransport(next), WithMiddleware(spy), WithBaseURL("https://sms.example.test"))

	_, err = client.CheckAuth(context.Background())
	be.Err(t, err, nil)
	be.Equal(t, seen, []string{"https://sms.example.test/auth/check"})
	be.Equal(t, next.calls, 1)
}
