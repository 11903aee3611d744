package wire

import (
	"bytes"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

var errDuplicateKey = errors.New("two keys resolve to the same identifier")

// keyTable maps every textual form SMS.RU may echo back for a request
// identifier to that identifier. A table lives for one decode call.
type keyTable[T comparable] map[string]T

func (t keyTable[T]) register(form string, id T) {
	if _, ok := t[form]; !ok {
		t[form] = id
	}
}

// phoneKeys registers each phone's canonical form and the same form with
// the leading "+" added or removed. Canonical forms are registered first so
// an alternate form never shadows another phone's exact text.
func phoneKeys(phones []core.RawPhoneNumber) keyTable[core.RawPhoneNumber] {
	t := make(keyTable[core.RawPhoneNumber], len(phones)*2)
	for _, p := range phones {
		t.register(p.String(), p)
	}
	for _, p := range phones {
		raw := p.String()
		if rest, ok := strings.CutPrefix(raw, "+"); ok {
			t.register(rest, p)
		} else {
			t.register("+"+raw, p)
		}
	}
	return t
}

// smsIDKeys registers only the canonical form of each id.
func smsIDKeys(ids []core.SMSID) keyTable[core.SMSID] {
	t := make(keyTable[core.SMSID], len(ids))
	for _, id := range ids {
		t.register(id.String(), id)
	}
	return t
}

// resolve tries the trimmed key, then the key as received.
func (t keyTable[T]) resolve(field, key string) (T, error) {
	if id, ok := t[strings.TrimSpace(key)]; ok {
		return id, nil
	}
	if id, ok := t[key]; ok {
		return id, nil
	}
	var zero T
	return zero, &core.DecodeError{Err: core.ErrUnknownResponseKey, Field: field, Value: key}
}

// object decodes a JSON object of raw values. Absent, null and the empty
// array that PHP backends emit for empty maps all yield an empty map.
func object(field string, raw json.RawMessage) (map[string]json.RawMessage, error) {
	if absent(raw) || string(bytes.TrimSpace(raw)) == "[]" {
		return map[string]json.RawMessage{}, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, malformed(field, "", err)
	}
	return m, nil
}

// items decodes a per-item map and re-keys it by request identifier. Keys
// are visited in sorted order so failures are reported deterministically.
func items[K comparable, V any](
	field string,
	raw json.RawMessage,
	keys keyTable[K],
	decode func(path string, item json.RawMessage) (V, error),
) (map[K]V, error) {
	m, err := object(field, raw)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		id, err := keys.resolve(field, key)
		if err != nil {
			return nil, err
		}
		if _, dup := out[id]; dup {
			return nil, malformed(field, key, errDuplicateKey)
		}
		v, err := decode(field+"."+key, m[key])
		if err != nil {
			return nil, err
		}
		out[id] = v
	}
	return out, nil
}
