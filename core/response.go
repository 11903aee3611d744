package core

// Money is a monetary amount exactly as SMS.RU wrote it, e.g. "10.00".
// It is never converted through a float.
type Money string

func (m Money) String() string { return string(m) }

// Envelope is the status triple present at the top level of every response
// and on every per-item result.
type Envelope struct {
	Status     Status     `json:"status"`
	StatusCode StatusCode `json:"status_code"`
	StatusText *string    `json:"status_text,omitempty"`
}

// OK reports whether Status is StatusOK.
func (e Envelope) OK() bool { return e.Status == StatusOK }

// Text returns StatusText or "".
func (e Envelope) Text() string {
	if e.StatusText == nil {
		return ""
	}
	return *e.StatusText
}

// Head returns the envelope of a response or item.
func (e Envelope) Head() Envelope { return e }

// SMSResult is the per-recipient outcome of sms/send. A recipient can fail
// while the envelope as a whole is OK.
type SMSResult struct {
	Envelope
	SMSID *SMSID `json:"sms_id,omitempty"`
}

// SendSMSResponse is the decoded sms/send response.
type SendSMSResponse struct {
	Envelope
	Balance *Money                       `json:"balance,omitempty"`
	SMS     map[RawPhoneNumber]SMSResult `json:"sms"`
}

// CostResult is the per-recipient outcome of sms/cost.
type CostResult struct {
	Envelope
	Cost *Money `json:"cost,omitempty"`
	SMS  *int   `json:"sms,omitempty"`
}

// CheckCostResponse is the decoded sms/cost response.
type CheckCostResponse struct {
	Envelope
	TotalCost *Money                        `json:"total_cost,omitempty"`
	TotalSMS  *int                          `json:"total_sms,omitempty"`
	SMS       map[RawPhoneNumber]CostResult `json:"sms"`
}

// StatusResult is the per-message outcome of sms/status.
type StatusResult struct {
	Envelope
	Cost *Money `json:"cost,omitempty"`
}

// CheckStatusResponse is the decoded sms/status response.
type CheckStatusResponse struct {
	Envelope
	Balance *Money                 `json:"balance,omitempty"`
	SMS     map[SMSID]StatusResult `json:"sms"`
}

// StartCallAuthResponse is the decoded callcheck/add response.
type StartCallAuthResponse struct {
	Envelope
	CheckID         *CallCheckID    `json:"check_id,omitempty"`
	CallPhone       *RawPhoneNumber `json:"call_phone,omitempty"`
	CallPhonePretty *string         `json:"call_phone_pretty,omitempty"`
	CallPhoneHTML   *string         `json:"call_phone_html,omitempty"`
}

// CallAuthStatusResponse is the decoded callcheck/status response.
type CallAuthStatusResponse struct {
	Envelope
	CheckStatus     *CallCheckStatusCode `json:"check_status,omitempty"`
	CheckStatusText *string              `json:"check_status_text,omitempty"`
}

// StatusOnlyResponse is returned by calls whose payload is only the envelope:
// auth/check, stoplist/add and stoplist/del.
type StatusOnlyResponse struct {
	Envelope
}

// BalanceResponse is the decoded my/balance response.
type BalanceResponse struct {
	Envelope
	Balance *Money `json:"balance,omitempty"`
}

// FreeUsageResponse is the decoded my/free response.
type FreeUsageResponse struct {
	Envelope
	TotalFree *int `json:"total_free,omitempty"`
	UsedToday *int `json:"used_today,omitempty"`
}

// LimitUsageResponse is the decoded my/limit response.
type LimitUsageResponse struct {
	Envelope
	TotalLimit *int `json:"total_limit,omitempty"`
	UsedToday  *int `json:"used_today,omitempty"`
}

// SendersResponse is the decoded my/senders response.
type SendersResponse struct {
	Envelope
	Senders []string `json:"senders"`
}

// StoplistResponse is the decoded stoplist/get response, phone to note.
type StoplistResponse struct {
	Envelope
	Stoplist map[RawPhoneNumber]string `json:"stoplist"`
}

// CallbacksResponse is the decoded callback/get response.
type CallbacksResponse struct {
	Envelope
	Callbacks []CallbackURL `json:"callback"`
}
