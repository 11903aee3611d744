// Package wire maps SMS.RU requests to form parameters and JSON response
// bodies back to typed responses.
package wire

import (
	"net/url"
	"strings"

	"github.com/petal-labs/smsru-go/core"
)

// Field is one form parameter.
type Field struct {
	Name  string
	Value string
}

// Form is an ordered list of form parameters. The order is stable for a
// given request; the server does not depend on it.
type Form []Field

func (f *Form) add(name, value string) {
	*f = append(*f, Field{Name: name, Value: value})
}

func (f *Form) flag(name string, set bool) {
	if set {
		f.add(name, "1")
	}
}

func (f *Form) json(mode core.JSONMode) {
	if mode == core.JSONModeJSON {
		f.add("json", "1")
	}
}

// Get returns the first value for name.
func (f Form) Get(name string) (string, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Encode renders f as application/x-www-form-urlencoded, keeping field order.
func (f Form) Encode() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}

// EncodeAuth returns the credential fields that precede every request.
func EncodeAuth(auth core.Auth) Form {
	var f Form
	if id, ok := auth.APIID(); ok {
		f.add(core.FieldAPIID, id.Secret().Expose())
	}
	if login, password, ok := auth.LoginPassword(); ok {
		f.add(core.FieldLogin, login.String())
		f.add(core.FieldPassword, password.Secret().Expose())
	}
	return f
}

// recipients emits either to=<a>,<b> and msg=<text>, or one to[<phone>]=<text>
// per recipient in canonical phone order.
func (f *Form) recipients(r core.Recipients) {
	if r.IsPerRecipient() {
		for _, m := range r.Messages() {
			f.add(core.FieldPhone+"["+m.Phone.String()+"]", m.Text.String())
		}
		return
	}
	phones := r.Phones()
	list := make([]string, len(phones))
	for i, p := range phones {
		list[i] = p.String()
	}
	f.add(core.FieldPhone, strings.Join(list, ","))
	f.add(core.FieldMessageText, r.Text().String())
}

// EncodeSendSMS builds the sms/send form.
func EncodeSendSMS(req core.SendSMS) Form {
	var f Form
	opts := req.Options
	f.json(opts.JSON)
	f.recipients(req.Recipients)
	if opts.From != nil {
		f.add(core.FieldSenderID, opts.From.String())
	}
	if opts.IP.IsValid() {
		f.add("ip", opts.IP.String())
	}
	if opts.Time != nil {
		f.add(core.FieldTime, opts.Time.String())
	}
	if opts.TTL != nil {
		f.add(core.FieldTTL, opts.TTL.String())
	}
	f.flag("daytime", opts.Daytime)
	f.flag("translit", opts.Translit)
	f.flag("test", opts.Test)
	if opts.PartnerID != nil {
		f.add(core.FieldPartnerID, opts.PartnerID.String())
	}
	return f
}

// EncodeCheckCost builds the sms/cost form.
func EncodeCheckCost(req core.CheckCost) Form {
	var f Form
	opts := req.Options
	f.json(opts.JSON)
	f.recipients(req.Recipients)
	if opts.From != nil {
		f.add(core.FieldSenderID, opts.From.String())
	}
	f.flag("translit", opts.Translit)
	return f
}

// EncodeCheckStatus builds the sms/status form.
func EncodeCheckStatus(req core.CheckStatus) Form {
	ids := req.IDs()
	list := make([]string, len(ids))
	for i, id := range ids {
		list[i] = id.String()
	}
	var f Form
	f.json(core.JSONModeJSON)
	f.add(core.FieldSMSID, strings.Join(list, ","))
	return f
}

// EncodeStartCallAuth builds the callcheck/add form.
func EncodeStartCallAuth(req core.StartCallAuth) Form {
	var f Form
	f.json(req.JSON)
	f.add("phone", req.Phone.String())
	return f
}

// EncodeCheckCallAuthStatus builds the callcheck/status form.
func EncodeCheckCallAuthStatus(req core.CheckCallAuthStatus) Form {
	var f Form
	f.json(req.JSON)
	f.add(core.FieldCallCheckID, req.CheckID.String())
	return f
}

// EncodeJSONOnly builds the form of calls without parameters: auth/check,
// my/balance, my/free, my/limit, my/senders, stoplist/get and callback/get.
func EncodeJSONOnly() Form {
	var f Form
	f.json(core.JSONModeJSON)
	return f
}

// EncodeAddStoplistEntry builds the stoplist/add form.
func EncodeAddStoplistEntry(req core.AddStoplistEntry) Form {
	var f Form
	f.json(core.JSONModeJSON)
	f.add("stoplist_phone", req.Phone.String())
	f.add(core.FieldStoplistText, req.Text.String())
	return f
}

// EncodeRemoveStoplistEntry builds the stoplist/del form.
func EncodeRemoveStoplistEntry(req core.RemoveStoplistEntry) Form {
	var f Form
	f.json(core.JSONModeJSON)
	f.add("stoplist_phone", req.Phone.String())
	return f
}

// EncodeCallback builds the callback/add and callback/del form.
func EncodeCallback(u core.CallbackURL) Form {
	var f Form
	f.json(core.JSONModeJSON)
	f.add(core.FieldCallbackURL, u.String())
	return f
}
