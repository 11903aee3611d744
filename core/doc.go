// Package core provides the validated values, requests, responses and error
// types shared by the SMS.RU client, its wire layer and the CLI.
//
// # Values
//
// Every value sent to SMS.RU has a constructor that validates it once, so the
// rest of the code never re-checks:
//
//	phone, err := core.NewRawPhoneNumber("+79251234567")
//	text, err := core.NewMessageText("hello")
//	ttl, err := core.NewTTLMinutes(60)
//
// Constructor failures are *[ValidationError] values and match
// [ErrValidation] with errors.Is.
//
// Use [ParsePhoneNumber] to normalize free-form input to E.164 before
// converting it to a [RawPhoneNumber].
//
// # Requests
//
// A send or cost request carries [Recipients] in one of two shapes:
//
//	core.ToMany([]core.RawPhoneNumber{a, b}, text)
//	core.PerRecipient(map[core.RawPhoneNumber]core.MessageText{a: t1, b: t2})
//
// [NewSendSMS] and [NewCheckCost] enforce 1..100 recipients;
// [NewCheckStatus] enforces 1..100 message ids.
//
// # Responses
//
// Every response embeds an [Envelope] with the status, status_code and
// status_text triple. Per-recipient and per-message maps are keyed by the
// exact identifier value from the request, so callers can look up their own
// phone:
//
//	result, ok := resp.SMS[phone]
//
// A per-item failure inside an OK envelope is data, not an error. Inspect
// each result's Envelope to find undelivered recipients.
//
// Money is kept as the decimal text SMS.RU wrote ([Money]). Status codes are
// raw integers ([StatusCode]); [StatusCode.Known] classifies documented ones:
//
//	if resp.StatusCode.IsRetryable() {
//	    // try again later
//	}
//
// # Error Handling
//
// Client calls return *[ClientError]. Its kind matches one of:
//   - [ErrTransport]: the request never got an HTTP response
//   - [ErrHTTPStatus]: non-2xx HTTP status
//   - [ErrAPI]: status=ERROR in the response envelope
//   - [ErrParse]: the body could not be decoded, see [DecodeError]
//   - [ErrUnsupportedFormat]: a non-JSON response mode was requested
//   - [ErrValidation]: a request failed validation before it was sent
//
// [ErrUnauthorized] additionally matches API errors with an auth status code.
//
// # Telemetry
//
// Implement [TelemetryHook] to observe request lifecycle, or use
// [NewSlogTelemetryHook] to log it.
package core
