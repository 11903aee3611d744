package core

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

// Form field names used by the SMS.RU API.
const (
	FieldAPIID        = "api_id"
	FieldLogin        = "login"
	FieldPassword     = "password"
	FieldPartnerID    = "partner_id"
	FieldSenderID     = "from"
	FieldMessageText  = "msg"
	FieldSMSID        = "sms_id"
	FieldCallCheckID  = "check_id"
	FieldPhone        = "to"
	FieldTime         = "time"
	FieldTTL          = "ttl"
	FieldStoplistText = "stoplist_text"
	FieldCallbackURL  = "url"

	FieldCallPhone     = "phone"
	FieldStoplistPhone = "stoplist_phone"
)

// Limits on the number of items in a single request.
const (
	MaxSendRecipients = 100
	MaxCostRecipients = 100
	MaxStatusIDs      = 100
)

// TTL bounds in minutes.
const (
	MinTTLMinutes = 1
	MaxTTLMinutes = 1440
)

func trimmedNonEmpty(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", emptyError(field)
	}
	return trimmed, nil
}

// APIID is the account api_id token. It is held as a Secret.
type APIID struct {
	secret Secret
}

// NewAPIID validates an api_id. Surrounding whitespace is removed.
func NewAPIID(value string) (APIID, error) {
	v, err := trimmedNonEmpty(FieldAPIID, value)
	if err != nil {
		return APIID{}, err
	}
	return APIID{secret: NewSecret(v)}, nil
}

// Secret returns the token wrapped for safe logging.
func (a APIID) Secret() Secret { return a.secret }

// Login is an SMS.RU account login.
type Login struct {
	value string
}

// NewLogin validates an account login.
func NewLogin(value string) (Login, error) {
	v, err := trimmedNonEmpty(FieldLogin, value)
	if err != nil {
		return Login{}, err
	}
	return Login{value: v}, nil
}

func (l Login) String() string { return l.value }

// Password is an SMS.RU account password. Whitespace is significant and kept.
type Password struct {
	secret Secret
}

// NewPassword validates a password. Only the empty string is rejected.
func NewPassword(value string) (Password, error) {
	if value == "" {
		return Password{}, emptyError(FieldPassword)
	}
	return Password{secret: NewSecret(value)}, nil
}

// Secret returns the password wrapped for safe logging.
func (p Password) Secret() Secret { return p.secret }

// PartnerID identifies an SMS.RU partner program account.
type PartnerID struct {
	value string
}

// NewPartnerID validates a partner id.
func NewPartnerID(value string) (PartnerID, error) {
	v, err := trimmedNonEmpty(FieldPartnerID, value)
	if err != nil {
		return PartnerID{}, err
	}
	return PartnerID{value: v}, nil
}

func (p PartnerID) String() string { return p.value }

// SenderID is a sender name enabled on the account.
type SenderID struct {
	value string
}

// NewSenderID validates a sender id.
func NewSenderID(value string) (SenderID, error) {
	v, err := trimmedNonEmpty(FieldSenderID, value)
	if err != nil {
		return SenderID{}, err
	}
	return SenderID{value: v}, nil
}

func (s SenderID) String() string { return s.value }

// MessageText is the body of an SMS. The text is sent exactly as given,
// but it must contain something other than whitespace.
type MessageText struct {
	value string
}

// NewMessageText validates message text.
func NewMessageText(value string) (MessageText, error) {
	if strings.TrimSpace(value) == "" {
		return MessageText{}, emptyError(FieldMessageText)
	}
	return MessageText{value: value}, nil
}

func (m MessageText) String() string { return m.value }

// SMSID is a message id assigned by SMS.RU.
type SMSID struct {
	value string
}

// NewSMSID validates a message id.
func NewSMSID(value string) (SMSID, error) {
	v, err := trimmedNonEmpty(FieldSMSID, value)
	if err != nil {
		return SMSID{}, err
	}
	return SMSID{value: v}, nil
}

func (s SMSID) String() string { return s.value }

// MarshalText implements encoding.TextMarshaler so SMSID can key JSON objects.
func (s SMSID) MarshalText() ([]byte, error) { return []byte(s.value), nil }

// CallCheckID is returned by callcheck/add and used to poll its status.
type CallCheckID struct {
	value string
}

// NewCallCheckID validates a call-check id.
func NewCallCheckID(value string) (CallCheckID, error) {
	v, err := trimmedNonEmpty(FieldCallCheckID, value)
	if err != nil {
		return CallCheckID{}, err
	}
	return CallCheckID{value: v}, nil
}

func (c CallCheckID) String() string { return c.value }

// MarshalText implements encoding.TextMarshaler.
func (c CallCheckID) MarshalText() ([]byte, error) { return []byte(c.value), nil }

// RawPhoneNumber is a recipient phone number as the caller wrote it, minus
// surrounding whitespace. No normalization is applied; use PhoneNumber for that.
type RawPhoneNumber struct {
	value string
}

// NewRawPhoneNumber validates a phone number string.
func NewRawPhoneNumber(value string) (RawPhoneNumber, error) {
	v, err := trimmedNonEmpty(FieldPhone, value)
	if err != nil {
		return RawPhoneNumber{}, err
	}
	return RawPhoneNumber{value: v}, nil
}

// String returns the canonical (trimmed) form.
func (p RawPhoneNumber) String() string { return p.value }

// MarshalText implements encoding.TextMarshaler so RawPhoneNumber can key JSON objects.
func (p RawPhoneNumber) MarshalText() ([]byte, error) { return []byte(p.value), nil }

// PhoneNumber is a parsed phone number normalized to E.164.
type PhoneNumber struct {
	raw  string
	e164 string
}

// ParsePhoneNumber parses input using defaultRegion (ISO 3166 code such as
// "RU") when the number has no international prefix.
func ParsePhoneNumber(defaultRegion, input string) (PhoneNumber, error) {
	raw, err := trimmedNonEmpty(FieldPhone, input)
	if err != nil {
		return PhoneNumber{}, err
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return PhoneNumber{}, &ValidationError{Field: FieldPhone, Input: raw, Reason: err.Error(), Err: ErrInvalidFormat}
	}
	return PhoneNumber{raw: raw, e164: phonenumbers.Format(num, phonenumbers.E164)}, nil
}

// Raw returns the trimmed input.
func (p PhoneNumber) Raw() string { return p.raw }

// E164 returns the normalized number, e.g. "+79251234567".
func (p PhoneNumber) E164() string { return p.e164 }

func (p PhoneNumber) String() string { return p.e164 }

// RawPhoneNumber converts to the form sent on the wire, using E.164.
func (p PhoneNumber) RawPhoneNumber() RawPhoneNumber {
	return RawPhoneNumber{value: p.e164}
}

// UnixTimestamp is a point in time in seconds since the Unix epoch.
type UnixTimestamp uint64

// UnixTimestampFromTime converts t. Times before the epoch are rejected.
func UnixTimestampFromTime(t time.Time) (UnixTimestamp, error) {
	sec := t.Unix()
	if sec < 0 {
		return 0, &ValidationError{Field: FieldTime, Input: t.String(), Err: ErrOutOfRange}
	}
	return UnixTimestamp(sec), nil
}

func (u UnixTimestamp) String() string { return strconv.FormatUint(uint64(u), 10) }

// TTLMinutes is a message lifetime in minutes.
type TTLMinutes uint16

// NewTTLMinutes validates a TTL in the range 1..1440.
func NewTTLMinutes(minutes int) (TTLMinutes, error) {
	if minutes < MinTTLMinutes || minutes > MaxTTLMinutes {
		return 0, &ValidationError{
			Field:  FieldTTL,
			Input:  strconv.Itoa(minutes),
			Reason: "expected 1..1440",
			Err:    ErrOutOfRange,
		}
	}
	return TTLMinutes(minutes), nil
}

func (t TTLMinutes) String() string { return strconv.Itoa(int(t)) }

// StoplistText is the note stored with a stoplist entry.
type StoplistText struct {
	value string
}

// NewStoplistText validates a stoplist note.
func NewStoplistText(value string) (StoplistText, error) {
	v, err := trimmedNonEmpty(FieldStoplistText, value)
	if err != nil {
		return StoplistText{}, err
	}
	return StoplistText{value: v}, nil
}

func (s StoplistText) String() string { return s.value }

// CallbackURL is an absolute http or https URL that receives delivery reports.
type CallbackURL struct {
	value string
}

// NewCallbackURL validates a callback URL.
func NewCallbackURL(value string) (CallbackURL, error) {
	v, err := trimmedNonEmpty(FieldCallbackURL, value)
	if err != nil {
		return CallbackURL{}, err
	}
	u, err := url.Parse(v)
	if err != nil {
		return CallbackURL{}, &ValidationError{Field: FieldCallbackURL, Input: v, Reason: err.Error(), Err: ErrInvalidFormat}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return CallbackURL{}, &ValidationError{Field: FieldCallbackURL, Input: v, Reason: "expected absolute http(s) URL", Err: ErrInvalidFormat}
	}
	return CallbackURL{value: v}, nil
}

func (c CallbackURL) String() string { return c.value }

// MarshalText implements encoding.TextMarshaler.
func (c CallbackURL) MarshalText() ([]byte, error) { return []byte(c.value), nil }
