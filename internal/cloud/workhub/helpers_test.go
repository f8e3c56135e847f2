package workhub_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
)

type memoryAuth struct {
	mu      sync.Mutex
	session auth.Session
	saves   int
	saveErr error
}

func (ma *memoryAuth) ClearSession() { ma.SetSession(auth.Session{}) }

func (ma *memoryAuth) Save() error {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	ma.saves++
	return ma.saveErr
}

func (ma *memoryAuth) Session() auth.Session {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	return ma.session
}

func (ma *memoryAuth) SetSession(session auth.Session) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	ma.session = session
}

type recordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	Header      http.Header
	Body        string
}

type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func (ts *testServer) Requests() []recordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]recordedRequest(nil), ts.requests...)
}

// newTestServer starts a server that records every request
// and replies with the provided status and JSON body
func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := ioutil.ReadAll(r.Body)

		ts.mu.Lock()
		ts.requests = append(ts.requests, recordedRequest{r.Method, r.URL.Path, r.URL.EscapedPath(), r.URL.RawQuery, r.Header.Clone(), string(payload)})
		ts.mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newAuthClient(ts *testServer, service auth.Service) workhub.Client {
	return workhub.NewAuthClient(workhub.Config{BaseURL: ts.URL}, service)
}
