package smsru

import (
	"context"

	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru/internal/wire"
)

// SendSMS sends a message (sms/send). An OK response can still hold failed
// recipients; check each entry of resp.SMS.
func (c *Client) SendSMS(ctx context.Context, req core.SendSMS) (*core.SendSMSResponse, error) {
	return do(ctx, c, call[*core.SendSMSResponse]{
		endpoint: EndpointSendSMS,
		mode:     req.Options.JSON,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeSendSMS(req) },
		decode: func(body []byte) (*core.SendSMSResponse, error) {
			return wire.DecodeSendSMS(req, body)
		},
	})
}

// CheckCost prices a message without sending it (sms/cost).
func (c *Client) CheckCost(ctx context.Context, req core.CheckCost) (*core.CheckCostResponse, error) {
	return do(ctx, c, call[*core.CheckCostResponse]{
		endpoint: EndpointCheckCost,
		mode:     req.Options.JSON,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeCheckCost(req) },
		decode: func(body []byte) (*core.CheckCostResponse, error) {
			return wire.DecodeCheckCost(req, body)
		},
	})
}

// CheckStatus reports delivery status for up to 100 messages (sms/status).
func (c *Client) CheckStatus(ctx context.Context, req core.CheckStatus) (*core.CheckStatusResponse, error) {
	return do(ctx, c, call[*core.CheckStatusResponse]{
		endpoint: EndpointCheckStatus,
		validate: req.Validate,
		form:     func() wire.Form { return wire.EncodeCheckStatus(req) },
		decode: func(body []byte) (*core.CheckStatusResponse, error) {
			return wire.DecodeCheckStatus(req, body)
		},
	})
}
