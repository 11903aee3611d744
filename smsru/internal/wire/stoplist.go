package wire

import (
	"maps"
	"slices"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/core"
)

type stoplistJSON struct {
	envelopeJSON
	Stoplist json.RawMessage `json:"stoplist"`
}

// DecodeStoplist decodes a stoplist/get body. Keys are validated as phone
// numbers; a blank key is ErrInvalidResponseValue and two keys naming the
// same trimmed number are ErrMalformedResponse.
func DecodeStoplist(body []byte) (*core.StoplistResponse, error) {
	var raw stoplistJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	entries, err := object("stoplist", raw.Stoplist)
	if err != nil {
		return nil, err
	}
	stoplist := make(map[core.RawPhoneNumber]string, len(entries))
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		phone, err := core.NewRawPhoneNumber(key)
		if err != nil {
			return nil, invalidValue("stoplist", key, err)
		}
		if _, dup := stoplist[phone]; dup {
			return nil, malformed("stoplist", key, errDuplicateKey)
		}
		var note string
		if !absent(entries[key]) {
			if err := json.Unmarshal(entries[key], &note); err != nil {
				return nil, malformed(join("stoplist", key), string(entries[key]), err)
			}
		}
		stoplist[phone] = note
	}
	return &core.StoplistResponse{Envelope: env, Stoplist: stoplist}, nil
}
