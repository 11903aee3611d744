// Package smsrutest provides an in-process SMS.RU server for tests.
//
// The server accepts form posts on every API method, records them, and
// answers with canned bodies. Methods without a canned reply get a plausible
// default: sms/send issues message ids for each recipient, my/balance reports
// DefaultBalance, and everything else returns an OK envelope.
package smsrutest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/elnormous/contenttype"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
)

// DefaultBalance is reported by my/balance and sms/send when no reply is set.
const DefaultBalance = "100.00"

var formMediaType = contenttype.NewMediaType("application/x-www-form-urlencoded")

// Request is one recorded form post.
type Request struct {
	Method      string // API method, e.g. "sms/send"
	ContentType string
	Body        string // form exactly as sent
	Form        url.Values
}

// Reply is a canned response.
type Reply struct {
	Status int // defaults to 200
	Body   string
}

// Server is a fake SMS.RU API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	apiID    string
	replies  map[string][]Reply
	requests []Request
	nextID   int
}

// Option configures a Server.
type Option func(*Server)

// WithAPIID makes the server reject any api_id other than id with status
// code 200, the way SMS.RU does.
func WithAPIID(id string) Option {
	return func(s *Server) {
		s.apiID = id
	}
}

// NewServer starts a server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{replies: make(map[string][]Reply)}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/{group}/{action}", s.handle)
	s.Server = httptest.NewServer(r)
	return s
}

// Reply queues a response for method. Queued replies are used in order; the
// last one repeats.
func (s *Server) Reply(method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method] = append(s.replies[method], Reply{Status: status, Body: body})
}

// ReplyJSON queues a 200 response with body marshalled from v.
func (s *Server) ReplyJSON(method string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("smsrutest: marshal reply: %v", err))
	}
	s.Reply(method, http.StatusOK, string(b))
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, or false when none was made.
func (s *Server) Last() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "group") + "/" + chi.URLParam(r, "action")

	ctype, err := contenttype.GetMediaType(r)
	if err != nil || !ctype.Matches(formMediaType) {
		http.Error(w, "content-type must be application/x-www-form-urlencoded", http.StatusUnsupportedMediaType)
		return
	}

	raw, err := readBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, err := url.ParseQuery(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      method,
		ContentType: r.Header.Get("Content-Type"),
		Body:        raw,
		Form:        form,
	})
	reply, ok := s.popReply(method)
	s.mu.Unlock()

	if s.apiID != "" && form.Get("api_id") != s.apiID {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "ERROR",
			"status_code": 200,
			"status_text": "Неправильный api_id",
		})
		return
	}
	if ok {
		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply.Body))
		return
	}
	writeJSON(w, http.StatusOK, s.defaultReply(method, form))
}

// popReply must be called with s.mu held.
func (s *Server) popReply(method string) (Reply, bool) {
	queue := s.replies[method]
	if len(queue) == 0 {
		return Reply{}, false
	}
	reply := queue[0]
	if len(queue) > 1 {
		s.replies[method] = queue[1:]
	}
	return reply, true
}

func (s *Server) defaultReply(method string, form url.Values) map[string]any {
	ok := map[string]any{"status": "OK", "status_code": 100}
	switch method {
	case "sms/send":
		items := make(map[string]any)
		for _, phone := range recipients(form) {
			items[phone] = map[string]any{
				"status":      "OK",
				"status_code": 100,
				"sms_id":      s.newSMSID(),
			}
		}
		ok["balance"] = json.RawMessage(DefaultBalance)
		ok["sms"] = items
	case "my/balance":
		ok["balance"] = json.RawMessage(DefaultBalance)
	case "my/senders":
		ok["senders"] = []string{"SMS.RU"}
	case "stoplist/get":
		ok["stoplist"] = map[string]string{}
	case "callback/get", "callback/add", "callback/del":
		ok["callback"] = []string{}
	}
	return ok
}

func (s *Server) newSMSID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return fmt.Sprintf("000000-%08d", s.nextID)
}

// recipients returns the phones of an sms/send or sms/cost form with the
// leading plus removed, as SMS.RU echoes them.
func recipients(form url.Values) []string {
	var phones []string
	if to := form.Get("to"); to != "" {
		phones = strings.Split(to, ",")
	}
	for key := range form {
		if strings.HasPrefix(key, "to[") && strings.HasSuffix(key, "]") {
			phones = append(phones, key[3:len(key)-1])
		}
	}
	for i, p := range phones {
		phones[i] = strings.TrimPrefix(strings.TrimSpace(p), "+")
	}
	sort.Strings(phones)
	return phones
}

func readBody(r *http.Request) (string, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
