package smsru

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Transport submits an encoded form and returns the raw response. A non-nil
// error means no response was received; HTTP error statuses are not errors.
type Transport interface {
	PostForm(ctx context.Context, url, form string) (status int, body []byte, err error)
}

// HTTPTransport posts forms with net/http.
type HTTPTransport struct {
	Client    *http.Client
	UserAgent string
}

// PostForm implements Transport.
func (t *HTTPTransport) PostForm(ctx context.Context, url, form string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

var _ Transport = (*HTTPTransport)(nil)
