package wire

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

type sendSMSJSON struct {
	envelopeJSON
	Balance json.RawMessage `json:"balance"`
	SMS     json.RawMessage `json:"sms"`
}

type sendItemJSON struct {
	envelopeJSON
	SMSID json.RawMessage `json:"sms_id"`
}

// DecodeSendSMS decodes an sms/send body. Items are keyed by the phones of
// req, which must be the request that produced body.
func DecodeSendSMS(req core.SendSMS, body []byte) (*core.SendSMSResponse, error) {
	var raw sendSMSJSON
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
	sms, err := items("sms", raw.SMS, phoneKeys(req.Recipients.Phones()), decodeSendItem)
	if err != nil {
		return nil, err
	}
	return &core.SendSMSResponse{Envelope: env, Balance: balance, SMS: sms}, nil
}

func decodeSendItem(path string, raw json.RawMessage) (core.SMSResult, error) {
	var item sendItemJSON
	if err := json.Unmarshal(raw, &item); err != nil {
		return core.SMSResult{}, malformed(path, "", err)
	}
	env, err := item.decode(path)
	if err != nil {
		return core.SMSResult{}, err
	}
	id, err := optionalValue(join(path, "sms_id"), blankAsAbsent(item.SMSID), core.NewSMSID)
	if err != nil {
		return core.SMSResult{}, err
	}
	return core.SMSResult{Envelope: env, SMSID: id}, nil
}

// blankAsAbsent treats "" as a missing value. Failed items may carry an
// empty sms_id.
func blankAsAbsent(raw json.RawMessage) json.RawMessage {
	var s string
	if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) == "" {
		return nil
	}
	return raw
}

type checkCostJSON struct {
	envelopeJSON
	TotalCost json.RawMessage `json:"total_cost"`
	TotalSMS  json.RawMessage `json:"total_sms"`
	SMS       json.RawMessage `json:"sms"`
}

type costItemJSON struct {
	envelopeJSON
	Cost json.RawMessage `json:"cost"`
	SMS  json.RawMessage `json:"sms"`
}

// DecodeCheckCost decodes an sms/cost body for req.
func DecodeCheckCost(req core.CheckCost, body []byte) (*core.CheckCostResponse, error) {
	var raw checkCostJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	totalCost, err := optionalMoney("total_cost", raw.TotalCost)
	if err != nil {
		return nil, err
	}
	totalSMS, err := optionalCount("total_sms", raw.TotalSMS)
	if err != nil {
		return nil, err
	}
	sms, err := items("sms", raw.SMS, phoneKeys(req.Recipients.Phones()), decodeCostItem)
	if err != nil {
		return nil, err
	}
	return &core.CheckCostResponse{Envelope: env, TotalCost: totalCost, TotalSMS: totalSMS, SMS: sms}, nil
}

func decodeCostItem(path string, raw json.RawMessage) (core.CostResult, error) {
	var item costItemJSON
	if err := json.Unmarshal(raw, &item); err != nil {
		return core.CostResult{}, malformed(path, "", err)
	}
	env, err := item.decode(path)
	if err != nil {
		return core.CostResult{}, err
	}
	cost, err := optionalMoney(join(path, "cost"), item.Cost)
	if err != nil {
		return core.CostResult{}, err
	}
	count, err := optionalCount(join(path, "sms"), item.SMS)
	if err != nil {
		return core.CostResult{}, err
	}
	return core.CostResult{Envelope: env, Cost: cost, SMS: count}, nil
}

type checkStatusJSON struct {
	envelopeJSON
	Balance json.RawMessage `json:"balance"`
	SMS     json.RawMessage `json:"sms"`
}

type statusItemJSON struct {
	envelopeJSON
	Cost json.RawMessage `json:"cost"`
}

// DecodeCheckStatus decodes an sms/status body for req.
func DecodeCheckStatus(req core.CheckStatus, body []byte) (*core.CheckStatusResponse, error) {
	var raw checkStatusJSON
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
	sms, err := items("sms", raw.SMS, smsIDKeys(req.IDs()), decodeStatusItem)
	if err != nil {
		return nil, err
	}
	return &core.CheckStatusResponse{Envelope: env, Balance: balance, SMS: sms}, nil
}

func decodeStatusItem(path string, raw json.RawMessage) (core.StatusResult, error) {
	var item statusItemJSON
	if err := json.Unmarshal(raw, &item); err != nil {
		return core.StatusResult{}, malformed(path, "", err)
	}
	env, err := item.decode(path)
	if err != nil {
		return core.StatusResult{}, err
	}
	cost, err := optionalMoney(join(path, "cost"), item.Cost)
	if err != nil {
		return core.StatusResult{}, err
	}
	return core.StatusResult{Envelope: env, Cost: cost}, nil
}
