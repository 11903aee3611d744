package core

import "strconv"

// Status is the top-level and per-item status marker.
type Status string

const (
	StatusOK    Status = "OK"
	StatusError Status = "ERROR"
)

// StatusCode is a raw SMS.RU status code. Codes outside the documented
// table are kept as-is; only their classification is unknown.
type StatusCode int32

// KnownStatusCode names a documented status code.
type KnownStatusCode int32

// Documented status codes.
const (
	CodeMessageNotFound KnownStatusCode = -1

	CodeRequestOKOrQueued             KnownStatusCode = 100
	CodeBeingDeliveredToOperator      KnownStatusCode = 101
	CodeSentInTransit                 KnownStatusCode = 102
	CodeDelivered                     KnownStatusCode = 103
	CodeNotDeliveredTTLExpired        KnownStatusCode = 104
	CodeNotDeliveredDeletedByOperator KnownStatusCode = 105
	CodeNotDeliveredPhoneFailure      KnownStatusCode = 106
	CodeNotDeliveredUnknown           KnownStatusCode = 107
	CodeNotDeliveredRejected          KnownStatusCode = 108
	CodeRead                          KnownStatusCode = 110
	CodeNotDeliveredNoRoute           KnownStatusCode = 150

	CodeInvalidAPIID                  KnownStatusCode = 200
	CodeInsufficientFunds             KnownStatusCode = 201
	CodeInvalidRecipientOrNoRoute     KnownStatusCode = 202
	CodeEmptyMessageText              KnownStatusCode = 203
	CodeSenderNotEnabled              KnownStatusCode = 204
	CodeMessageTooLong                KnownStatusCode = 205
	CodeDailyLimitExceeded            KnownStatusCode = 206
	CodeNoDeliveryRoute               KnownStatusCode = 207
	CodeInvalidTime                   KnownStatusCode = 208
	CodeRecipientInStopList           KnownStatusCode = 209
	CodeUsedGetInsteadOfPost          KnownStatusCode = 210
	CodeMethodNotFound                KnownStatusCode = 211
	CodeMessageNotUTF8                KnownStatusCode = 212
	CodeTooManyNumbers                KnownStatusCode = 213
	CodeRecipientAbroadBlocked        KnownStatusCode = 214
	CodeRecipientInGlobalStopList     KnownStatusCode = 215
	CodeForbiddenWordInText           KnownStatusCode = 216
	CodeMissingDisclaimerPhrase       KnownStatusCode = 217
	CodeServiceTemporarilyUnavailable KnownStatusCode = 220
	CodeSenderMustMatchBrand          KnownStatusCode = 221
	CodeExceededDailyLimitToNumber    KnownStatusCode = 230
	CodeExceededIdenticalPerMinute    KnownStatusCode = 231
	CodeExceededIdenticalPerDay       KnownStatusCode = 232
	CodeExceededRepeatSendLimit       KnownStatusCode = 233

	CodeInvalidToken             KnownStatusCode = 300
	CodeInvalidAuth              KnownStatusCode = 301
	CodeAccountNotConfirmed      KnownStatusCode = 302
	CodeConfirmationCodeWrong    KnownStatusCode = 303
	CodeTooManyConfirmationCodes KnownStatusCode = 304
	CodeTooManyWrongAttempts     KnownStatusCode = 305

	CodeCallCheckNotConfirmedYet         KnownStatusCode = 400
	CodeCallCheckConfirmed               KnownStatusCode = 401
	CodeCallCheckExpiredOrInvalidCheckID KnownStatusCode = 402

	CodeServerError                     KnownStatusCode = 500
	CodeLimitIPCountryMismatchCategory1 KnownStatusCode = 501
	CodeLimitIPCountryMismatchCategory2 KnownStatusCode = 502
	CodeLimitTooManyToCountry           KnownStatusCode = 503
	CodeLimitTooManyForeignAuth         KnownStatusCode = 504
	CodeLimitTooManyFromIP              KnownStatusCode = 505
	CodeLimitHostingProviderIP          KnownStatusCode = 506
	CodeInvalidEndUserIP                KnownStatusCode = 507
	CodeLimitTooManyCalls               KnownStatusCode = 508
	CodeCountryBlocked                  KnownStatusCode = 550

	CodeCallbackURLInvalid      KnownStatusCode = 901
	CodeCallbackHandlerNotFound KnownStatusCode = 902
)

var knownStatusNames = map[KnownStatusCode]string{
	CodeMessageNotFound:                  "message not found",
	CodeRequestOKOrQueued:                "request ok or message queued",
	CodeBeingDeliveredToOperator:         "being delivered to operator",
	CodeSentInTransit:                    "sent, in transit",
	CodeDelivered:                        "delivered",
	CodeNotDeliveredTTLExpired:           "not delivered: ttl expired",
	CodeNotDeliveredDeletedByOperator:    "not delivered: deleted by operator",
	CodeNotDeliveredPhoneFailure:         "not delivered: phone failure",
	CodeNotDeliveredUnknown:              "not delivered: unknown reason",
	CodeNotDeliveredRejected:             "not delivered: rejected",
	CodeRead:                             "read",
	CodeNotDeliveredNoRoute:              "not delivered: no route",
	CodeInvalidAPIID:                     "invalid api_id",
	CodeInsufficientFunds:                "insufficient funds",
	CodeInvalidRecipientOrNoRoute:        "invalid recipient or no route",
	CodeEmptyMessageText:                 "empty message text",
	CodeSenderNotEnabled:                 "sender not enabled",
	CodeMessageTooLong:                   "message too long",
	CodeDailyLimitExceeded:               "daily limit exceeded",
	CodeNoDeliveryRoute:                  "no delivery route",
	CodeInvalidTime:                      "invalid time",
	CodeRecipientInStopList:              "recipient in stoplist",
	CodeUsedGetInsteadOfPost:             "used GET instead of POST",
	CodeMethodNotFound:                   "method not found",
	CodeMessageNotUTF8:                   "message not UTF-8",
	CodeTooManyNumbers:                   "too many numbers",
	CodeRecipientAbroadBlocked:           "recipient abroad blocked",
	CodeRecipientInGlobalStopList:        "recipient in global stoplist",
	CodeForbiddenWordInText:              "forbidden word in text",
	CodeMissingDisclaimerPhrase:          "missing disclaimer phrase",
	CodeServiceTemporarilyUnavailable:    "service temporarily unavailable",
	CodeSenderMustMatchBrand:             "sender must match brand",
	CodeExceededDailyLimitToNumber:       "daily limit to number exceeded",
	CodeExceededIdenticalPerMinute:       "identical messages per minute exceeded",
	CodeExceededIdenticalPerDay:          "identical messages per day exceeded",
	CodeExceededRepeatSendLimit:          "repeat send limit exceeded",
	CodeInvalidToken:                     "invalid token",
	CodeInvalidAuth:                      "invalid login or password",
	CodeAccountNotConfirmed:              "account not confirmed",
	CodeConfirmationCodeWrong:            "confirmation code wrong",
	CodeTooManyConfirmationCodes:         "too many confirmation codes",
	CodeTooManyWrongAttempts:             "too many wrong attempts",
	CodeCallCheckNotConfirmedYet:         "call check not confirmed yet",
	CodeCallCheckConfirmed:               "call check confirmed",
	CodeCallCheckExpiredOrInvalidCheckID: "call check expired or invalid check_id",
	CodeServerError:                      "server error",
	CodeLimitIPCountryMismatchCategory1:  "limit: ip country mismatch (category 1)",
	CodeLimitIPCountryMismatchCategory2:  "limit: ip country mismatch (category 2)",
	CodeLimitTooManyToCountry:            "limit: too many to country",
	CodeLimitTooManyForeignAuth:          "limit: too many foreign auth",
	CodeLimitTooManyFromIP:               "limit: too many from ip",
	CodeLimitHostingProviderIP:           "limit: hosting provider ip",
	CodeInvalidEndUserIP:                 "invalid end user ip",
	CodeLimitTooManyCalls:                "limit: too many calls",
	CodeCountryBlocked:                   "country blocked",
	CodeCallbackURLInvalid:               "callback url invalid",
	CodeCallbackHandlerNotFound:          "callback handler not found",
}

func (k KnownStatusCode) String() string {
	if name, ok := knownStatusNames[k]; ok {
		return name
	}
	return "unknown status code " + strconv.Itoa(int(k))
}

// IsRetryable reports whether the condition is temporary on the server side.
func (k KnownStatusCode) IsRetryable() bool {
	switch k {
	case CodeServiceTemporarilyUnavailable, CodeTooManyConfirmationCodes,
		CodeTooManyWrongAttempts, CodeServerError:
		return true
	}
	return false
}

// IsAuthError reports whether the code signals bad credentials.
func (k KnownStatusCode) IsAuthError() bool {
	switch k {
	case CodeInvalidAPIID, CodeInvalidToken, CodeInvalidAuth, CodeAccountNotConfirmed:
		return true
	}
	return false
}

// Known returns the documented meaning of c, if any.
func (c StatusCode) Known() (KnownStatusCode, bool) {
	k := KnownStatusCode(c)
	_, ok := knownStatusNames[k]
	return k, ok
}

// IsRetryable is false for unknown codes.
func (c StatusCode) IsRetryable() bool {
	k, ok := c.Known()
	return ok && k.IsRetryable()
}

// IsAuthError is false for unknown codes.
func (c StatusCode) IsAuthError() bool {
	k, ok := c.Known()
	return ok && k.IsAuthError()
}

func (c StatusCode) String() string {
	return strconv.Itoa(int(c))
}

// CallCheckStatusCode is the check_status value of callcheck/status.
type CallCheckStatusCode int32

// KnownCallCheckStatus names a documented call-check status.
type KnownCallCheckStatus int32

const (
	CallCheckNotConfirmedYet         KnownCallCheckStatus = 400
	CallCheckConfirmed               KnownCallCheckStatus = 401
	CallCheckExpiredOrInvalidCheckID KnownCallCheckStatus = 402
)

// Known returns the documented meaning of c, if any.
func (c CallCheckStatusCode) Known() (KnownCallCheckStatus, bool) {
	switch k := KnownCallCheckStatus(c); k {
	case CallCheckNotConfirmedYet, CallCheckConfirmed, CallCheckExpiredOrInvalidCheckID:
		return k, true
	}
	return 0, false
}

// Confirmed reports whether the user placed the confirmation call.
func (c CallCheckStatusCode) Confirmed() bool {
	return KnownCallCheckStatus(c) == CallCheckConfirmed
}

func (c CallCheckStatusCode) String() string {
	return strconv.Itoa(int(c))
}
