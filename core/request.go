package core

import (
	"net/netip"
	"slices"
	"strings"
)

// JSONMode selects the response format requested from SMS.RU.
// Only JSONModeJSON is supported by the client.
type JSONMode int

const (
	// JSONModeJSON requests JSON responses (json=1). It is the zero value.
	JSONModeJSON JSONMode = iota
	// JSONModePlain requests the legacy plain-text format.
	JSONModePlain
)

func (m JSONMode) String() string {
	if m == JSONModePlain {
		return "plain"
	}
	return "json"
}

// RecipientMessage pairs a recipient with its own message text.
type RecipientMessage struct {
	Phone RawPhoneNumber
	Text  MessageText
}

// Recipients is either one text sent to many phones or a distinct text per
// phone. Build it with ToMany or PerRecipient.
type Recipients struct {
	perRecipient bool
	phones       []RawPhoneNumber
	text         MessageText
	messages     []RecipientMessage
}

// ToMany sends text to every phone, in the given order.
func ToMany(phones []RawPhoneNumber, text MessageText) Recipients {
	return Recipients{phones: slices.Clone(phones), text: text}
}

// PerRecipient sends each phone its own text. Entries are kept ordered by
// the phone's canonical form.
func PerRecipient(messages map[RawPhoneNumber]MessageText) Recipients {
	list := make([]RecipientMessage, 0, len(messages))
	for phone, text := range messages {
		list = append(list, RecipientMessage{Phone: phone, Text: text})
	}
	slices.SortFunc(list, func(a, b RecipientMessage) int {
		return strings.Compare(a.Phone.String(), b.Phone.String())
	})
	return Recipients{perRecipient: true, messages: list}
}

// IsPerRecipient reports which shape r has.
func (r Recipients) IsPerRecipient() bool { return r.perRecipient }

// Text returns the shared message of a to-many request.
func (r Recipients) Text() MessageText { return r.text }

// Messages returns the per-recipient entries in canonical phone order.
func (r Recipients) Messages() []RecipientMessage { return slices.Clone(r.messages) }

// Phones returns every recipient. To-many order is preserved; per-recipient
// phones come back in canonical order.
func (r Recipients) Phones() []RawPhoneNumber {
	if !r.perRecipient {
		return slices.Clone(r.phones)
	}
	phones := make([]RawPhoneNumber, len(r.messages))
	for i, m := range r.messages {
		phones[i] = m.Phone
	}
	return phones
}

// Len returns the number of recipients.
func (r Recipients) Len() int {
	if r.perRecipient {
		return len(r.messages)
	}
	return len(r.phones)
}

func (r Recipients) validate(max int) error {
	n := r.Len()
	if n == 0 {
		return emptyError(FieldPhone)
	}
	if n > max {
		return tooManyError(FieldPhone, max, n)
	}
	if !r.perRecipient && r.text == (MessageText{}) {
		return emptyError(FieldMessageText)
	}
	return nil
}

// SendOptions are the optional sms/send parameters. Zero values are not sent.
type SendOptions struct {
	JSON      JSONMode
	From      *SenderID
	IP        netip.Addr
	Time      *UnixTimestamp
	TTL       *TTLMinutes
	Daytime   bool
	Translit  bool
	Test      bool
	PartnerID *PartnerID
}

// SendSMS is a validated sms/send request.
type SendSMS struct {
	Recipients Recipients
	Options    SendOptions
}

// NewSendSMS validates the recipient count (1..100).
func NewSendSMS(recipients Recipients, opts SendOptions) (SendSMS, error) {
	if err := recipients.validate(MaxSendRecipients); err != nil {
		return SendSMS{}, err
	}
	return SendSMS{Recipients: recipients, Options: opts}, nil
}

// Validate reports a request that did not come from NewSendSMS.
func (s SendSMS) Validate() error {
	return s.Recipients.validate(MaxSendRecipients)
}

// CostOptions are the optional sms/cost parameters.
type CostOptions struct {
	JSON     JSONMode
	From     *SenderID
	Translit bool
}

// CheckCost is a validated sms/cost request.
type CheckCost struct {
	Recipients Recipients
	Options    CostOptions
}

// NewCheckCost validates the recipient count (1..100).
func NewCheckCost(recipients Recipients, opts CostOptions) (CheckCost, error) {
	if err := recipients.validate(MaxCostRecipients); err != nil {
		return CheckCost{}, err
	}
	return CheckCost{Recipients: recipients, Options: opts}, nil
}

// Validate reports a request that did not come from NewCheckCost.
func (c CheckCost) Validate() error {
	return c.Recipients.validate(MaxCostRecipients)
}

// CheckStatus is a validated sms/status request.
type CheckStatus struct {
	ids []SMSID
}

// NewCheckStatus validates the id count (1..100).
func NewCheckStatus(ids []SMSID) (CheckStatus, error) {
	if len(ids) == 0 {
		return CheckStatus{}, emptyError(FieldSMSID)
	}
	if len(ids) > MaxStatusIDs {
		return CheckStatus{}, tooManyError(FieldSMSID, MaxStatusIDs, len(ids))
	}
	return CheckStatus{ids: slices.Clone(ids)}, nil
}

// CheckStatusOne queries a single message id.
func CheckStatusOne(id SMSID) CheckStatus {
	return CheckStatus{ids: []SMSID{id}}
}

// IDs returns the queried message ids in request order.
func (c CheckStatus) IDs() []SMSID { return slices.Clone(c.ids) }

// Validate reports the zero CheckStatus.
func (c CheckStatus) Validate() error {
	if len(c.ids) == 0 {
		return emptyError(FieldSMSID)
	}
	return nil
}

// StartCallAuth asks SMS.RU for a number the user must call (callcheck/add).
type StartCallAuth struct {
	Phone RawPhoneNumber
	JSON  JSONMode
}

// Validate reports a missing phone.
func (s StartCallAuth) Validate() error {
	if s.Phone == (RawPhoneNumber{}) {
		return emptyError(FieldCallPhone)
	}
	return nil
}

// CheckCallAuthStatus polls a call check (callcheck/status).
type CheckCallAuthStatus struct {
	CheckID CallCheckID
	JSON    JSONMode
}

// Validate reports a missing check id.
func (c CheckCallAuthStatus) Validate() error {
	if c.CheckID == (CallCheckID{}) {
		return emptyError(FieldCallCheckID)
	}
	return nil
}

// AddStoplistEntry blocks a phone with a note (stoplist/add).
type AddStoplistEntry struct {
	Phone RawPhoneNumber
	Text  StoplistText
}

// Validate reports a missing phone or note.
func (a AddStoplistEntry) Validate() error {
	if a.Phone == (RawPhoneNumber{}) {
		return emptyError(FieldStoplistPhone)
	}
	if a.Text == (StoplistText{}) {
		return emptyError(FieldStoplistText)
	}
	return nil
}

// RemoveStoplistEntry unblocks a phone (stoplist/del).
type RemoveStoplistEntry struct {
	Phone RawPhoneNumber
}

// Validate reports a missing phone.
func (r RemoveStoplistEntry) Validate() error {
	if r.Phone == (RawPhoneNumber{}) {
		return emptyError(FieldStoplistPhone)
	}
	return nil
}

// AddCallback registers a delivery report URL (callback/add).
type AddCallback struct {
	URL CallbackURL
}

// Validate reports a missing URL.
func (a AddCallback) Validate() error { return validateCallbackURL(a.URL) }

// RemoveCallback unregisters a delivery report URL (callback/del).
type RemoveCallback struct {
	URL CallbackURL
}

// Validate reports a missing URL.
func (r RemoveCallback) Validate() error { return validateCallbackURL(r.URL) }

func validateCallbackURL(u CallbackURL) error {
	if u == (CallbackURL{}) {
		return emptyError(FieldCallbackURL)
	}
	return nil
}
