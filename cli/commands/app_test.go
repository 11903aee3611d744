package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/petal-labs/smsru-go/cli/config"
	"github.com/petal-labs/smsru-go/cli/keystore"
	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru"
	"github.com/petal-labs/smsru-go/smsru/smsrutest"
)

type testApp struct {
	app    *App
	server *smsrutest.Server
	ks     *keystore.MemoryKeystore
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

type testOptions struct {
	cfg     *config.Config
	env     smsru.EnvConfig
	stdin   string
	baseURL string
}

func newTestApp(t *testing.T, o testOptions) *testApp {
	t.Helper()

	server := smsrutest.NewServer()
	t.Cleanup(server.Close)

	cfg := o.cfg
	if cfg == nil {
		cfg = &config.Config{Profiles: map[string]config.ProfileConfig{}}
	}
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = server.URL
	}

	ta := &testApp{
		server: server,
		ks:     keystore.NewMemoryKeystore(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	ta.app = NewApp(
		WithConfigLoader(func(string) (*config.Config, error) { return cfg, nil }),
		WithClientFactory(func(auth core.Auth, opts ...smsru.Option) *smsru.Client {
			return smsru.New(auth, append(opts, smsru.WithBaseURL(baseURL))...)
		}),
		WithKeystoreFactory(func() (keystore.Keystore, error) { return ta.ks, nil }),
		WithEnvLoader(func() (smsru.EnvConfig, error) { return o.env, nil }),
		WithIO(strings.NewReader(o.stdin), ta.stdout, ta.stderr),
	)
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.app.ExecuteArgs(args)
}

func envAPIID() smsru.EnvConfig {
	return smsru.EnvConfig{APIID: "test-key"}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

func TestSendWithEnvCredentials(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	err := ta.run("send", "--to", "+79251234567", "--text", "hello", "--test")
	if err != nil {
		t.Fatalf("send error = %v, stderr = %s", err, ta.stderr)
	}

	req, ok := ta.server.Last()
	if !ok {
		t.Fatal("no request recorded")
	}
	if req.Method != "sms/send" {
		t.Errorf("Method = %q, want sms/send", req.Method)
	}
	if got := req.Body; got != "api_id=test-key&json=1&to=%2B79251234567&msg=hello&test=1" {
		t.Errorf("Body = %q", got)
	}

	out := ta.stdout.String()
	if !strings.Contains(out, "Balance: 100.00") {
		t.Errorf("stdout missing balance: %s", out)
	}
	if !strings.Contains(out, "+79251234567  sent, sms_id 000000-00000001") {
		t.Errorf("stdout missing sms id: %s", out)
	}
}

func TestSendNormalizesNationalNumbers(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	if err := ta.run("send", "--to", "9251234567", "--text", "hi"); err != nil {
		t.Fatalf("send error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if got := req.Form.Get("to"); got != "+79251234567" {
		t.Errorf("to = %q, want +79251234567", got)
	}
}

func TestSendPerRecipient(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	err := ta.run("send", "--to-text", "+79251234567=Hi Ann", "--to-text", "+79031234567=Hi Bob")
	if err != nil {
		t.Fatalf("send error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if got := req.Form.Get("to[+79251234567]"); got != "Hi Ann" {
		t.Errorf("to[+79251234567] = %q, want Hi Ann", got)
	}
	if got := req.Form.Get("to[+79031234567]"); got != "Hi Bob" {
		t.Errorf("to[+79031234567] = %q, want Hi Bob", got)
	}
	if req.Form.Has("msg") {
		t.Error("per-recipient send should not set msg")
	}
}

func TestSendPartialFailure(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("sms/send", 200, `{
		"status": "OK", "status_code": 100, "balance": 4122.56,
		"sms": {
			"79251234567": {"status": "OK", "status_code": 100, "sms_id": "000000-10000000"},
			"79031234567": {"status": "ERROR", "status_code": 207, "status_text": "На этот номер нельзя отправлять сообщения"}
		}
	}`)

	err := ta.run("send", "--to", "+79251234567,+79031234567", "--text", "hello")
	if code := exitCode(err); code != ExitProvider {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, ExitProvider, err)
	}

	out := ta.stdout.String()
	if !strings.Contains(out, "Balance: 4122.56") {
		t.Errorf("balance should keep its text: %s", out)
	}
	if !strings.Contains(out, "+79031234567  ERROR 207") {
		t.Errorf("stdout missing failed recipient: %s", out)
	}
	if !strings.Contains(out, "+79251234567  sent, sms_id 000000-10000000") {
		t.Errorf("stdout missing sent recipient: %s", out)
	}
}

func TestSendOptions(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	err := ta.run("send", "--to", "+79251234567", "--text", "hi",
		"--from", "MyShop", "--ip", "10.0.0.1", "--time", "1700000000", "--ttl", "60",
		"--daytime", "--translit", "--partner-id", "42")
	if err != nil {
		t.Fatalf("send error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	want := "api_id=test-key&json=1&to=%2B79251234567&msg=hi&from=MyShop&ip=10.0.0.1&time=1700000000&ttl=60&daytime=1&translit=1&partner_id=42"
	if req.Body != want {
		t.Errorf("Body = %q\nwant   %q", req.Body, want)
	}
}

func TestSendValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no recipients", []string{"send", "--text", "hi"}},
		{"empty text", []string{"send", "--to", "+79251234567", "--text", "  "}},
		{"bad phone", []string{"send", "--to", "not-a-phone", "--text", "hi"}},
		{"mixed modes", []string{"send", "--to", "+79251234567", "--to-text", "+79031234567=hi"}},
		{"pair without text", []string{"send", "--to-text", "+79251234567"}},
		{"ttl out of range", []string{"send", "--to", "+79251234567", "--text", "hi", "--ttl", "0"}},
		{"bad ip", []string{"send", "--to", "+79251234567", "--text", "hi", "--ip", "300.1.1.1"}},
		{"bad time", []string{"send", "--to", "+79251234567", "--text", "hi", "--time", "tomorrow"}},
		{"unknown flag", []string{"send", "--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, testOptions{env: envAPIID()})

			err := ta.run(tt.args...)
			if code := exitCode(err); code != ExitValidation {
				t.Errorf("exit code = %d, want %d (err = %v)", code, ExitValidation, err)
			}
			if len(ta.server.Requests()) != 0 {
				t.Error("no request should reach the server")
			}
		})
	}
}

func TestProfileAPIIDFromKeystore(t *testing.T) {
	cfg := &config.Config{
		DefaultProfile: "shop",
		Profiles: map[string]config.ProfileConfig{
			"shop": {APIIDRef: "shop_api_id", Sender: "MyShop", Test: true},
		},
	}
	ta := newTestApp(t, testOptions{cfg: cfg, env: envAPIID()})
	if err := ta.ks.Set("shop_api_id", "keystore-key"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := ta.run("send", "--to", "+79251234567", "--text", "hi"); err != nil {
		t.Fatalf("send error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if got := req.Form.Get("api_id"); got != "keystore-key" {
		t.Errorf("api_id = %q, profile should win over the environment", got)
	}
	if got := req.Form.Get("from"); got != "MyShop" {
		t.Errorf("from = %q, want profile sender", got)
	}
	if got := req.Form.Get("test"); got != "1" {
		t.Errorf("test = %q, want profile test mode", got)
	}
}

func TestProfileLoginFromKeystore(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.ProfileConfig{
			"legacy": {Login: "79251234567", PasswordRef: "legacy_password"},
		},
	}
	ta := newTestApp(t, testOptions{cfg: cfg})
	if err := ta.ks.Set("legacy_password", "secret"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := ta.run("--profile", "legacy", "balance"); err != nil {
		t.Fatalf("balance error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if req.Body != "login=79251234567&password=secret&json=1" {
		t.Errorf("Body = %q", req.Body)
	}
}

func TestProfileMissingSecret(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.ProfileConfig{
			"default": {APIIDRef: "missing"},
		},
	}
	ta := newTestApp(t, testOptions{cfg: cfg})

	err := ta.run("balance")
	if code := exitCode(err); code != ExitValidation {
		t.Fatalf("exit code = %d, want %d", code, ExitValidation)
	}
	if !strings.Contains(ta.stderr.String(), "smsru keys set missing") {
		t.Errorf("stderr = %q, want keys set hint", ta.stderr.String())
	}
}

func TestKeystoreFallbackByProfileName(t *testing.T) {
	ta := newTestApp(t, testOptions{})
	if err := ta.ks.Set("default", "fallback-key"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := ta.run("balance"); err != nil {
		t.Fatalf("balance error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if got := req.Form.Get("api_id"); got != "fallback-key" {
		t.Errorf("api_id = %q, want fallback-key", got)
	}
	if !strings.Contains(ta.stdout.String(), "Balance: 100.00") {
		t.Errorf("stdout = %q", ta.stdout.String())
	}
}

func TestNoCredentials(t *testing.T) {
	ta := newTestApp(t, testOptions{})

	err := ta.run("balance")
	if code := exitCode(err); code != ExitValidation {
		t.Fatalf("exit code = %d, want %d", code, ExitValidation)
	}
	if !strings.Contains(ta.stderr.String(), "smsru keys set default") {
		t.Errorf("stderr = %q, want keys set hint", ta.stderr.String())
	}
}

func TestAPIErrorJSON(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("my/balance", 200, `{"status":"ERROR","status_code":200,"status_text":"Неправильный api_id"}`)

	err := ta.run("--json", "balance")
	if code := exitCode(err); code != ExitProvider {
		t.Fatalf("exit code = %d, want %d", code, ExitProvider)
	}

	var out struct {
		Error struct {
			Type       string `json:"type"`
			Method     string `json:"method"`
			StatusCode int    `json:"status_code"`
			StatusText string `json:"status_text"`
			RequestID  string `json:"request_id"`
		} `json:"error"`
	}
	if err := json.Unmarshal(ta.stderr.Bytes(), &out); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, ta.stderr)
	}
	if out.Error.Type != "api_error" || out.Error.StatusCode != 200 || out.Error.Method != "my/balance" {
		t.Errorf("error = %+v", out.Error)
	}
	if out.Error.StatusText != "Неправильный api_id" {
		t.Errorf("status_text = %q", out.Error.StatusText)
	}
	if out.Error.RequestID == "" {
		t.Error("request_id should be set")
	}
}

func TestUnauthorizedHint(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("auth/check", 200, `{"status":"ERROR","status_code":301,"status_text":"Неправильный пароль"}`)

	err := ta.run("auth", "check")
	if code := exitCode(err); code != ExitProvider {
		t.Fatalf("exit code = %d, want %d", code, ExitProvider)
	}
	if !strings.Contains(ta.stderr.String(), "Check the api_id or login") {
		t.Errorf("stderr = %q", ta.stderr.String())
	}
}

func TestNetworkError(t *testing.T) {
	closed := smsrutest.NewServer()
	url := closed.URL
	closed.Close()

	ta := newTestApp(t, testOptions{env: envAPIID(), baseURL: url})

	err := ta.run("balance")
	if code := exitCode(err); code != ExitNetwork {
		t.Errorf("exit code = %d, want %d (err = %v)", code, ExitNetwork, err)
	}
}

func TestHTTPStatusError(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("my/balance", 502, "bad gateway")

	err := ta.run("balance")
	if code := exitCode(err); code != ExitProvider {
		t.Errorf("exit code = %d, want %d", code, ExitProvider)
	}
	if !strings.Contains(ta.stderr.String(), "502") {
		t.Errorf("stderr = %q, want http status", ta.stderr.String())
	}
}

func TestBalanceJSON(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	if err := ta.run("--json", "balance"); err != nil {
		t.Fatalf("balance error = %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(ta.stdout.Bytes(), &out); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if out["status"] != "OK" {
		t.Errorf("status = %v, want OK", out["status"])
	}
	if out["balance"] != "100.00" {
		t.Errorf("balance = %v, want the text 100.00", out["balance"])
	}
}

func TestCost(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("sms/cost", 200, `{
		"status": "OK", "status_code": 100, "total_cost": "1.50", "total_sms": 3,
		"sms": {"79251234567": {"status": "OK", "status_code": 100, "cost": "1.50", "sms": "3"}}
	}`)

	if err := ta.run("cost", "--to", "+79251234567", "--text", "hello", "--translit"); err != nil {
		t.Fatalf("cost error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if req.Body != "api_id=test-key&json=1&to=%2B79251234567&msg=hello&translit=1" {
		t.Errorf("Body = %q", req.Body)
	}
	out := ta.stdout.String()
	if !strings.Contains(out, "Total: 1.50 for 3 SMS") || !strings.Contains(out, "+79251234567  1.50 (3 SMS)") {
		t.Errorf("stdout = %q", out)
	}
}

func TestStatus(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("sms/status", 200, `{
		"status": "OK", "status_code": 100, "balance": 4122.56,
		"sms": {"000000-10000000": {"status": "OK", "status_code": 103, "status_text": "Сообщение доставлено", "cost": "0.50"}}
	}`)

	if err := ta.run("status", "000000-10000000"); err != nil {
		t.Fatalf("status error = %v, stderr = %s", err, ta.stderr)
	}

	req, _ := ta.server.Last()
	if got := req.Form.Get("sms_id"); got != "000000-10000000" {
		t.Errorf("sms_id = %q", got)
	}
	if out := ta.stdout.String(); !strings.Contains(out, "000000-10000000  OK 103 Сообщение доставлено, cost 0.50") {
		t.Errorf("stdout = %q", out)
	}
}

func TestCallcheck(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("callcheck/add", 200, `{
		"status": "OK", "status_code": 100, "check_id": "201737-542",
		"call_phone": "78005008275", "call_phone_pretty": "+7 (800) 500-8275",
		"call_phone_html": "<a href=\"callto:78005008275\">+7 (800) 500-8275</a>"
	}`)
	ta.server.Reply("callcheck/status", 200, `{
		"status": "OK", "status_code": 100, "check_status": "401",
		"check_status_text": "номер подтвержден"
	}`)

	if err := ta.run("callcheck", "add", "+79251234567"); err != nil {
		t.Fatalf("callcheck add error = %v, stderr = %s", err, ta.stderr)
	}
	out := ta.stdout.String()
	if !strings.Contains(out, "Check ID: 201737-542") || !strings.Contains(out, "+7 (800) 500-8275") {
		t.Errorf("stdout = %q", out)
	}
	req, _ := ta.server.Last()
	if got := req.Form.Get("phone"); got != "+79251234567" {
		t.Errorf("phone = %q", got)
	}

	ta.stdout.Reset()
	if err := ta.run("callcheck", "status", "201737-542"); err != nil {
		t.Fatalf("callcheck status error = %v, stderr = %s", err, ta.stderr)
	}
	if out := ta.stdout.String(); !strings.Contains(out, "confirmed (номер подтвержден)") {
		t.Errorf("stdout = %q", out)
	}
}

func TestCallCheckText(t *testing.T) {
	code := func(c core.CallCheckStatusCode) *core.CallCheckStatusCode { return &c }

	tests := []struct {
		resp core.CallAuthStatusResponse
		want string
	}{
		{core.CallAuthStatusResponse{}, "unknown"},
		{core.CallAuthStatusResponse{CheckStatus: code(400)}, "not confirmed yet"},
		{core.CallAuthStatusResponse{CheckStatus: code(401)}, "confirmed"},
		{core.CallAuthStatusResponse{CheckStatus: code(402)}, "expired or invalid check id"},
		{core.CallAuthStatusResponse{CheckStatus: code(999)}, "status 999"},
	}

	for _, tt := range tests {
		if got := callCheckText(&tt.resp); got != tt.want {
			t.Errorf("callCheckText() = %q, want %q", got, tt.want)
		}
	}
}

func TestAccountCommands(t *testing.T) {
	tests := []struct {
		args   []string
		method string
		reply  string
		want   string
	}{
		{[]string{"auth", "check"}, "auth/check", `{"status":"OK","status_code":100}`, `Credentials for profile "default" are valid.`},
		{[]string{"free"}, "my/free", `{"status":"OK","status_code":100,"total_free":5,"used_today":"2"}`, "Free today: 2 of 5 used"},
		{[]string{"limit"}, "my/limit", `{"status":"OK","status_code":100,"total_limit":"7000","used_today":12}`, "Limit today: 12 of 7000 used"},
		{[]string{"senders"}, "my/senders", `{"status":"OK","status_code":100,"senders":["SMS.RU","MyShop"]}`, "  - MyShop"},
		{[]string{"senders"}, "my/senders", `{"status":"OK","status_code":100}`, "No approved senders."},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			ta := newTestApp(t, testOptions{env: envAPIID()})
			ta.server.Reply(tt.method, 200, tt.reply)

			if err := ta.run(tt.args...); err != nil {
				t.Fatalf("error = %v, stderr = %s", err, ta.stderr)
			}
			req, _ := ta.server.Last()
			if req.Method != tt.method {
				t.Errorf("Method = %q, want %q", req.Method, tt.method)
			}
			if !strings.Contains(ta.stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want %q", ta.stdout.String(), tt.want)
			}
		})
	}
}

func TestStoplist(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})

	if err := ta.run("stoplist", "get"); err != nil {
		t.Fatalf("stoplist get error = %v", err)
	}
	if !strings.Contains(ta.stdout.String(), "Stoplist is empty.") {
		t.Errorf("stdout = %q", ta.stdout.String())
	}

	if err := ta.run("stoplist", "add", "+79251234567", "spam complaint"); err != nil {
		t.Fatalf("stoplist add error = %v, stderr = %s", err, ta.stderr)
	}
	req, _ := ta.server.Last()
	if req.Body != "api_id=test-key&json=1&stoplist_phone=%2B79251234567&stoplist_text=spam+complaint" {
		t.Errorf("Body = %q", req.Body)
	}

	if err := ta.run("stoplist", "del", "+79251234567"); err != nil {
		t.Fatalf("stoplist del error = %v", err)
	}
	req, _ = ta.server.Last()
	if req.Method != "stoplist/del" || req.Form.Get("stoplist_phone") != "+79251234567" {
		t.Errorf("request = %+v", req)
	}
}

func TestCallbacks(t *testing.T) {
	ta := newTestApp(t, testOptions{env: envAPIID()})
	ta.server.Reply("callback/add", 200, `{"status":"OK","status_code":100,"callback":["https://example.com/sms"]}`)

	if err := ta.run("callbacks", "add", "https://example.com/sms"); err != nil {
		t.Fatalf("callbacks add error = %v, stderr = %s", err, ta.stderr)
	}
	if !strings.Contains(ta.stdout.String(), "  - https://example.com/sms") {
		t.Errorf("stdout = %q", ta.stdout.String())
	}
	req, _ := ta.server.Last()
	if got := req.Form.Get("url"); got != "https://example.com/sms" {
		t.Errorf("url = %q", got)
	}

	ta.stdout.Reset()
	if err := ta.run("callbacks", "get"); err != nil {
		t.Fatalf("callbacks get error = %v", err)
	}
	if !strings.Contains(ta.stdout.String(), "No callbacks registered.") {
		t.Errorf("stdout = %q", ta.stdout.String())
	}

	err := ta.run("callbacks", "del", "not a url")
	if code := exitCode(err); code != ExitValidation {
		t.Errorf("exit code = %d, want %d", code, ExitValidation)
	}
}

func TestExitError(t *testing.T) {
	err := exitWithCode(ExitValidation, errors.New("test error"))

	if err.Error() != "test error" {
		t.Errorf("Error() = %q, want 'test error'", err.Error())
	}

	exitErr, ok := err.(*exitError)
	if !ok {
		t.Fatal("expected *exitError type")
	}
	if exitErr.ExitCode() != ExitValidation {
		t.Errorf("ExitCode() = %d, want %d", exitErr.ExitCode(), ExitValidation)
	}
}

func TestHandleErrorExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &core.ClientError{Err: core.ErrValidation}, ExitValidation},
		{"unsupported format", &core.ClientError{Err: core.ErrUnsupportedFormat}, ExitValidation},
		{"transport", &core.ClientError{Err: core.ErrTransport, Cause: errors.New("dial tcp")}, ExitNetwork},
		{"http status", &core.ClientError{Err: core.ErrHTTPStatus, HTTPStatus: 503}, ExitProvider},
		{"api", &core.ClientError{Err: core.ErrAPI, Code: 201}, ExitProvider},
		{"parse", &core.ClientError{Err: core.ErrParse, Cause: errors.New("bad json")}, ExitProvider},
		{"plain validation", &core.ValidationError{Field: "to", Err: core.ErrEmptyValue}, ExitValidation},
		{"other", errors.New("boom"), ExitProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			a := NewApp(WithIO(nil, &bytes.Buffer{}, &stderr))

			if code := exitCode(a.handleError(tt.err)); code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
			if !strings.HasPrefix(stderr.String(), "Error: ") {
				t.Errorf("stderr = %q, want Error: prefix", stderr.String())
			}
		})
	}
}

func TestParseSendTime(t *testing.T) {
	if ts, err := parseSendTime("1700000000"); err != nil || ts != 1700000000 {
		t.Errorf("parseSendTime(unix) = %d, %v", ts, err)
	}
	if ts, err := parseSendTime("2023-11-14T22:13:20Z"); err != nil || ts != 1700000000 {
		t.Errorf("parseSendTime(RFC 3339) = %d, %v", ts, err)
	}
	if _, err := parseSendTime("1969-12-31T23:59:59Z"); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("parseSendTime(before epoch) error = %v, want ErrOutOfRange", err)
	}
	if _, err := parseSendTime("soon"); !errors.Is(err, core.ErrInvalidFormat) {
		t.Errorf("parseSendTime(soon) error = %v, want ErrInvalidFormat", err)
	}
}
