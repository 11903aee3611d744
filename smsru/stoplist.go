package smsru

import (
	"context"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru/internal/wire"
)

// AddStoplistEntry blocks a phone from receiving messages (stoplist/add).
func (c *Client) AddStoplistEntry(ctx context.Context, req core.AddStoplistEntry) (*core.StatusOnlyResponse, error) {
	return do(ctx, c, call[*core.StatusOnlyResponse]{
		endpoint: EndpointAddStoplist,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeAddStoplistEntry(req) },
		decode:   wire.DecodeStatusOnly,
	})
}

// RemoveStoplistEntry unblocks a phone (stoplist/del).
func (c *Client) RemoveStoplistEntry(ctx context.Context, req core.RemoveStoplistEntry) (*core.StatusOnlyResponse, error) {
	return do(ctx, c, call[*core.StatusOnlyResponse]{
		endpoint: EndpointRemoveStoplist,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeRemoveStoplistEntry(req) },
		decode:   wire.DecodeStatusOnly,
	})
}

// Stoplist returns every blocked phone with its note (stoplist/get).
func (c *Client) Stoplist(ctx context.Context) (*core.StoplistResponse, error) {
	return do(ctx, c, call[*core.StoplistResponse]{
		endpoint: EndpointStoplist,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeStoplist,
	})
}

// AddCallback registers a delivery report URL (callback/add).
func (c *Client) AddCallback(ctx context.Context, req core.AddCallback) (*core.CallbacksResponse, error) {
	return do(ctx, c, call[*core.CallbacksResponse]{
		endpoint: EndpointAddCallback,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeCallback(req.URL) },
		decode:   wire.DecodeCallbacks,
	})
}

// RemoveCallback unregisters a delivery report URL (callback/del).
func (c *Client) RemoveCallback(ctx context.Context, req core.RemoveCallback) (*core.CallbacksResponse, error) {
	return do(ctx, c, call[*core.CallbacksResponse]{
		endpoint: EndpointRemoveCallback,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeCallback(req.URL) },
		decode:   wire.DecodeCallbacks,
	})
}

// Callbacks lists the registered delivery report URLs (callback/get).
func (c *Client) Callbacks(ctx context.Context) (*core.CallbacksResponse, error) {
	return do(ctx, c, call[*core.CallbacksResponse]{
		endpoint: EndpointCallbacks,
		form:     wire.EncodeJSONOnly,
		decode:   wire.DecodeCallbacks,
	})
}
