// Package smsru is a typed client for the SMS.RU HTTP API.
//
// # Quick Start
//
//	id, _ := core.NewAPIID(os.Getenv("SMSRU_API_ID"))
//	client := smsru.New(core.APIIDAuth(id))
//
//	to, _ := core.NewRawPhoneNumber("+79251234567")
//	text, _ := core.NewMessageText("hello")
//	req, err := core.NewSendSMS(core.ToMany([]core.RawPhoneNumber{to}, text), core.SendOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.SendSMS(ctx, req)
//
// # Partial Failure
//
// A send to many recipients can succeed overall while individual recipients
// fail. The top-level envelope of resp is OK; each entry of resp.SMS carries
// its own status and status code.
//
// # Errors
//
// Every method returns a *core.ClientError. Match its kind with errors.Is:
//
//	switch {
//	case errors.Is(err, core.ErrUnauthorized):
//	    // bad api_id or password
//	case errors.Is(err, core.ErrAPI):
//	    // status ERROR; see ClientError.Code
//	case errors.Is(err, core.ErrParse):
//	    // unexpected body; errors.As a *core.DecodeError for details
//	}
//
// # Middleware
//
// Middleware wraps the transport, for example to stop calling an API that
// keeps failing:
//
//	breaker := smsru.NewCircuitBreaker(smsru.DefaultCircuitBreakerConfig())
//	client := smsru.New(auth, smsru.WithMiddleware(breaker.Middleware()))
package smsru
