package wire

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

type startCallAuthJSON struct {
	envelopeJSON
	CheckID         json.RawMessage `json:"check_id"`
	CallPhone       json.RawMessage `json:"call_phone"`
	CallPhonePretty *string         `json:"call_phone_pretty"`
	CallPhoneHTML   *string         `json:"call_phone_html"`
}

// DecodeStartCallAuth decodes a callcheck/add body. call_phone usually
// arrives as a JSON number.
func DecodeStartCallAuth(body []byte) (*core.StartCallAuthResponse, error) {
	var raw startCallAuthJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	checkID, err := optionalValue("check_id", raw.CheckID, core.NewCallCheckID)
	if err != nil {
		return nil, err
	}
	phone, err := optionalValue("call_phone", raw.CallPhone, core.NewRawPhoneNumber)
	if err != nil {
		return nil, err
	}
	return &core.StartCallAuthResponse{
		Envelope:        env,
		CheckID:         checkID,
		CallPhone:       phone,
		CallPhonePretty: raw.CallPhonePretty,
		CallPhoneHTML:   raw.CallPhoneHTML,
	}, nil
}

type callAuthStatusJSON struct {
	envelopeJSON
	CheckStatus     json.RawMessage `json:"check_status"`
	CheckStatusText *string         `json:"check_status_text"`
}

// DecodeCallAuthStatus decodes a callcheck/status body.
func DecodeCallAuthStatus(body []byte) (*core.CallAuthStatusResponse, error) {
	var raw callAuthStatusJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	status, err := decodeCheckStatus("check_status", raw.CheckStatus)
	if err != nil {
		return nil, err
	}
	return &core.CallAuthStatusResponse{
		Envelope:        env,
		CheckStatus:     status,
		CheckStatusText: raw.CheckStatusText,
	}, nil
}

// decodeCheckStatus accepts a number or a numeric string. A string that
// does not parse is treated as absent.
func decodeCheckStatus(field string, raw json.RawMessage) (*core.CallCheckStatusCode, error) {
	if absent(raw) {
		return nil, nil
	}
	tok := bytes.TrimSpace(raw)
	switch c := tok[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return nil, invalidScalar(field, tok, err)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return nil, nil
		}
		code := core.CallCheckStatusCode(n)
		return &code, nil
	case isNumberStart(c):
		n, err := strconv.ParseInt(string(tok), 10, 32)
		if err != nil {
			return nil, invalidScalar(field, tok, err)
		}
		code := core.CallCheckStatusCode(n)
		return &code, nil
	}
	return nil, invalidScalar(field, tok, nil)
}
