package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// TMDBStub is an in-process stand-in for the metadata provider. Responses
// are programmable per endpoint and every call is counted, so tests can
// assert that a request never reached the network.
type TMDBStub struct {
	server *httptest.Server

	mu            sync.Mutex
	searchStatus  int
	searchBody    string
	creditsStatus int
	creditsBody   string
	searchCalls   int
	creditsCalls  int
	lastQuery     string
}

func NewTMDBStub(t *testing.T) *TMDBStub {
	t.Helper()

	stub := &TMDBStub{
		searchStatus:  http.StatusOK,
		searchBody:    `{"page":1,"results":[],"total_pages":1,"total_results":0}`,
		creditsStatus: http.StatusOK,
		creditsBody:   `{"id":1,"cast":[],"crew":[]}`,
	}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		defer stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search/movie":
			stub.searchCalls++
			stub.lastQuery = r.URL.Query().Get("query")
			w.WriteHeader(stub.searchStatus)
			w.Write([]byte(stub.searchBody))
		case strings.HasPrefix(r.URL.Path, "/movie/") && strings.HasSuffix(r.URL.Path, "/credits"):
			stub.creditsCalls++
			w.WriteHeader(stub.creditsStatus)
			w.Write([]byte(stub.creditsBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status_message":"The resource you requested could not be found."}`))
		}
	}))

	t.Cleanup(stub.server.Close)

	return stub
}

func (s *TMDBStub) URL() string {
	return s.server.URL
}

// SetSearchResponse programs the next search responses.
func (s *TMDBStub) SetSearchResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchStatus = status
	s.searchBody = body
}

// SetCreditsResponse programs the next credits responses.
func (s *TMDBStub) SetCreditsResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creditsStatus = status
	s.creditsBody = body
}

// SearchCalls reports how many search requests reached the stub.
func (s *TMDBStub) SearchCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCalls
}

// CreditsCalls reports how many credits requests reached the stub.
func (s *TMDBStub) CreditsCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creditsCalls
}

// LastQuery returns the query string of the most recent search call.
func (s *TMDBStub) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}
