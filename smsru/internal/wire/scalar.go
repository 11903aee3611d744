package wire

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

// SMS.RU writes numeric fields as JSON numbers on some calls and as JSON
// strings on others. Fields are captured as json.RawMessage and decoded here.

func absent(raw json.RawMessage) bool {
	tok := bytes.TrimSpace(raw)
	return len(tok) == 0 || bytes.Equal(tok, []byte("null"))
}

func isNumberStart(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9')
}

func invalidScalar(field string, tok []byte, cause error) error {
	return &core.DecodeError{Err: core.ErrInvalidScalar, Field: field, Value: string(tok), Cause: cause}
}

// decodeText returns the text of a string token, or the literal digits of a
// number token as written by the server. Anything else is ErrInvalidScalar.
func decodeText(field string, raw json.RawMessage) (string, error) {
	tok := bytes.TrimSpace(raw)
	if len(tok) == 0 {
		return "", invalidScalar(field, tok, nil)
	}
	switch c := tok[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return "", invalidScalar(field, tok, err)
		}
		return s, nil
	case isNumberStart(c):
		return string(tok), nil
	}
	return "", invalidScalar(field, tok, nil)
}

// decodeMoney keeps the server's decimal text: 10.00 stays "10.00".
func decodeMoney(field string, raw json.RawMessage) (core.Money, error) {
	s, err := decodeText(field, raw)
	return core.Money(s), err
}

// decodeCount parses an integer from a number token or from a string
// holding one. ok is false when a string token does not parse.
func decodeCount(field string, raw json.RawMessage) (n int, ok bool, err error) {
	tok := bytes.TrimSpace(raw)
	if len(tok) == 0 {
		return 0, false, invalidScalar(field, tok, nil)
	}
	switch c := tok[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(tok, &s); err != nil {
			return 0, false, invalidScalar(field, tok, err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false, nil
		}
		return n, true, nil
	case isNumberStart(c):
		n, err := strconv.Atoi(string(tok))
		if err != nil {
			return 0, false, invalidScalar(field, tok, err)
		}
		return n, true, nil
	}
	return 0, false, invalidScalar(field, tok, nil)
}

func optionalMoney(field string, raw json.RawMessage) (*core.Money, error) {
	if absent(raw) {
		return nil, nil
	}
	m, err := decodeMoney(field, raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func optionalCount(field string, raw json.RawMessage) (*int, error) {
	if absent(raw) {
		return nil, nil
	}
	n, ok, err := decodeCount(field, raw)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

// optionalValue decodes a string-or-number field and validates it with
// parse. A validation failure is ErrInvalidResponseValue.
func optionalValue[T any](field string, raw json.RawMessage, parse func(string) (T, error)) (*T, error) {
	if absent(raw) {
		return nil, nil
	}
	s, err := decodeText(field, raw)
	if err != nil {
		return nil, err
	}
	v, err := parse(s)
	if err != nil {
		return nil, invalidValue(field, s, err)
	}
	return &v, nil
}

func invalidValue(field, value string, cause error) error {
	return &core.DecodeError{Err: core.ErrInvalidResponseValue, Field: field, Value: value, Cause: cause}
}

func malformed(field, value string, cause error) error {
	return &core.DecodeError{Err: core.ErrMalformedResponse, Field: field, Value: value, Cause: cause}
}
