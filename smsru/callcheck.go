package smsru

import (
	"context"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru/internal/wire"
)

// StartCallAuth starts a call check (callcheck/add). The user proves
// ownership of req.Phone by calling resp.CallPhone.
func (c *Client) StartCallAuth(ctx context.Context, req core.StartCallAuth) (*core.StartCallAuthResponse, error) {
	return do(ctx, c, call[*core.StartCallAuthResponse]{
		endpoint: EndpointStartCallAuth,
		mode:     req.JSON,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeStartCallAuth(req) },
		decode:   wire.DecodeStartCallAuth,
	})
}

// CheckCallAuthStatus polls a call check (callcheck/status).
func (c *Client) CheckCallAuthStatus(ctx context.Context, req core.CheckCallAuthStatus) (*core.CallAuthStatusResponse, error) {
	return do(ctx, c, call[*core.CallAuthStatusResponse]{
		endpoint: EndpointCheckCallAuthStatus,
		mode:     req.JSON,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeCheckCallAuthStatus(req) },
		decode:   wire.DecodeCallAuthStatus,
	})
}
