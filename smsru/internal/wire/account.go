package wire

import (
	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

// DecodeStatusOnly decodes bodies that carry only the envelope.
func DecodeStatusOnly(body []byte) (*core.StatusOnlyResponse, error) {
	var raw envelopeJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	return &core.StatusOnlyResponse{Envelope: env}, nil
}

type balanceJSON struct {
	envelopeJSON
	Balance json.RawMessage `json:"balance"`
}

// DecodeBalance decodes a my/balance body.
func DecodeBalance(body []byte) (*core.BalanceResponse, error) {
	var raw balanceJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	balance, err := optionalMoney("balance", raw.Balance)
	if err != nil {
		return nil, err
	}
	return &core.BalanceResponse{Envelope: env, Balance: balance}, nil
}

type freeUsageJSON struct {
	envelopeJSON
	TotalFree json.RawMessage `json:"total_free"`
	UsedToday json.RawMessage `json:"used_today"`
}

// DecodeFreeUsage decodes a my/free body.
func DecodeFreeUsage(body []byte) (*core.FreeUsageResponse, error) {
	var raw freeUsageJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	total, err := optionalCount("total_free", raw.TotalFree)
	if err != nil {
		return nil, err
	}
	used, err := optionalCount("used_today", raw.UsedToday)
	if err != nil {
		return nil, err
	}
	return &core.FreeUsageResponse{Envelope: env, TotalFree: total, UsedToday: used}, nil
}

type limitUsageJSON struct {
	envelopeJSON
	TotalLimit json.RawMessage `json:"total_limit"`
	UsedToday  json.RawMessage `json:"used_today"`
}

// DecodeLimitUsage decodes a my/limit body.
func DecodeLimitUsage(body []byte) (*core.LimitUsageResponse, error) {
	var raw limitUsageJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	total, err := optionalCount("total_limit", raw.TotalLimit)
	if err != nil {
		return nil, err
	}
	used, err := optionalCount("used_today", raw.UsedToday)
	if err != nil {
		return nil, err
	}
	return &core.LimitUsageResponse{Envelope: env, TotalLimit: total, UsedToday: used}, nil
}

type sendersJSON struct {
	envelopeJSON
	Senders []string `json:"senders"`
}

// DecodeSenders decodes a my/senders body. A missing list is empty.
func DecodeSenders(body []byte) (*core.SendersResponse, error) {
	var raw sendersJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	senders := raw.Senders
	if senders == nil {
		senders = []string{}
	}
	return &core.SendersResponse{Envelope: env, Senders: senders}, nil
}
