package wire

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

var (
	errMissing       = errors.New("missing required field")
	errUnknownStatus = errors.New(`expected "OK" or "ERROR"`)
)

// envelopeJSON is the status triple shared by every response and item.
type envelopeJSON struct {
	Status     json.RawMessage `json:"status"`
	StatusCode json.RawMessage `json:"status_code"`
	StatusText *string         `json:"status_text"`
}

func (e envelopeJSON) decode(path string) (core.Envelope, error) {
	status, err := decodeStatus(join(path, "status"), e.Status)
	if err != nil {
		return core.Envelope{}, err
	}
	code, err := decodeStatusCode(join(path, "status_code"), e.StatusCode)
	if err != nil {
		return core.Envelope{}, err
	}
	return core.Envelope{Status: status, StatusCode: code, StatusText: e.StatusText}, nil
}

func decodeStatus(field string, raw json.RawMessage) (core.Status, error) {
	if absent(raw) {
		return "", malformed(field, "", errMissing)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", malformed(field, string(raw), err)
	}
	switch status := core.Status(s); status {
	case core.StatusOK, core.StatusError:
		return status, nil
	}
	return "", malformed(field, s, errUnknownStatus)
}

// decodeStatusCode accepts an integer or a string holding one. Unknown codes
// are kept.
func decodeStatusCode(field string, raw json.RawMessage) (core.StatusCode, error) {
	if absent(raw) {
		return 0, malformed(field, "", errMissing)
	}
	tok := bytes.TrimSpace(raw)
	text := string(tok)
	if tok[0] == '"' {
		if err := json.Unmarshal(tok, &text); err != nil {
			return 0, malformed(field, string(tok), err)
		}
		text = strings.TrimSpace(text)
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, malformed(field, string(tok), err)
	}
	return core.StatusCode(n), nil
}

// decodeBody unmarshals a response body. Invalid JSON is malformed.
func decodeBody(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return malformed("", "", err)
	}
	return nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
