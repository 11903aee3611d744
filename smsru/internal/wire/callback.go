package wire

import (
	"github.com/petal-labs/smsru-go/core"
)

type callbacksJSON struct {
	envelopeJSON
	Callback []string `json:"callback"`
}

// DecodeCallbacks decodes a callback/get body. Every entry must be a valid
// callback URL.
func DecodeCallbacks(body []byte) (*core.CallbacksResponse, error) {
	var raw callbacksJSON
	if err := decodeBody(body, &raw); err != nil {
		return nil, err
	}
	env, err := raw.decode("")
	if err != nil {
		return nil, err
	}
	callbacks := make([]core.CallbackURL, 0, len(raw.Callback))
	for _, s := range raw.Callback {
		u, err := core.NewCallbackURL(s)
		if err != nil {
			return nil, invalidValue("callback", s, err)
		}
		callbacks = append(callbacks, u)
	}
	return &core.CallbacksResponse{Envelope: env, Callbacks: callbacks}, nil
}
