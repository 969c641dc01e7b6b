// Package mettest provides an in-process fake of the collection API for tests.
package mettest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// PathPrefix is the path under which the fake mounts its routes, mirroring
// the live API.
const PathPrefix = "/public/collection/v1"

// Request is one request received by the fake.
type Request struct {
	Method   string
	Path     string // path below PathPrefix, e.g. "/objects/123"
	RawQuery string
}

type response struct {
	status int
	body   []byte
}

// Server serves canned responses keyed by request path and records every
// request it receives. Unconfigured paths answer 404.
type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]response
	requests  []Request
}

// NewServer starts a fake API and closes it when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{responses: make(map[string]response)}
	s.srv = httptest.NewServer(s.router())
	t.Cleanup(s.srv.Close)
	return s
}

// BaseURL is the fake's equivalent of the live API root.
func (s *Server) BaseURL() string { return s.srv.URL + PathPrefix }

// Client returns an HTTP client configured for the fake.
func (s *Server) Client() *http.Client { return s.srv.Client() }

// Respond configures the reply for path. Strings and byte slices are written
// verbatim; any other body is JSON-encoded.
func (s *Server) Respond(path string, status int, body any) {
	var data []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		data = b
	case string:
		data = []byte(b)
	default:
		var err error
		if data, err = json.Marshal(b); err != nil {
			panic("mettest: encode body: " + err.Error())
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = response{status: status, body: data}
}

// Requests returns the requests received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Reset forgets recorded requests. Configured responses are kept.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Route(PathPrefix, func(r chi.Router) {
		r.Use(s.record)
		r.Get("/objects", s.serve)
		r.Get("/objects/{objectID}", s.serveObject)
		r.Get("/departments", s.serve)
		r.Get("/search", s.serve)
	})
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path[len(PathPrefix):],
			RawQuery: r.URL.RawQuery,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveObject(w http.ResponseWriter, r *http.Request) {
	if _, err := strconv.Atoi(chi.URLParam(r, "objectID")); err != nil {
		http.Error(w, `{"message":"ObjectID not found"}`, http.StatusNotFound)
		return
	}
	s.serve(w, r)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp, ok := s.responses[r.URL.Path[len(PathPrefix):]]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"message":"Not a valid object"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}
