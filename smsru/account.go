package smsru

import (
	"context"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru/internal/wire"
)

// CheckAuth verifies the configured credentials (auth/check).
func (c *Client) CheckAuth(ctx context.Context) (*core.StatusOnlyResponse, error) {
	return do(ctx, c, call[*core.StatusOnlyResponse]{
		endpoint: EndpointCheckAuth,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeStatusOnly,
	})
}

// Balance returns the account balance (my/balance).
func (c *Client) Balance(ctx context.Context) (*core.BalanceResponse, error) {
	return do(ctx, c, call[*core.BalanceResponse]{
		endpoint: EndpointBalance,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeBalance,
	})
}

// FreeUsage returns today's free message allowance (my/free).
func (c *Client) FreeUsage(ctx context.Context) (*core.FreeUsageResponse, error) {
	return do(ctx, c, call[*core.FreeUsageResponse]{
		endpoint: EndpointFreeUsage,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeFreeUsage,
	})
}

// LimitUsage returns the daily sending limit and today's usage (my/limit).
func (c *Client) LimitUsage(ctx context.Context) (*core.LimitUsageResponse, error) {
	return do(ctx, c, call[*core.LimitUsageResponse]{
		endpoint: EndpointLimitUsage,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeLimitUsage,
	})
}

// Senders lists the approved sender names (my/senders).
func (c *Client) Senders(ctx context.Context) (*core.SendersResponse, error) {
	return do(ctx, c, call[*core.SendersResponse]{
		endpoint: EndpointSenders,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeSenders,
	})
}
