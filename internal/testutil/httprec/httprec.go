// Package httprec provides a recording HTTP test server used across SDK
// tests: it counts requests and captures each request's method, path,
// headers, and raw body for later inspection.
package httprec

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Request is one captured inbound request.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Server wraps an httptest.Server and records every request it serves.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// New starts a recording server whose responses are produced by respond.
// The server is shut down automatically when the test finishes via Close.
func New(respond http.HandlerFunc) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		respond(w, r)
	}))
	return s
}

// Count returns the number of requests served so far.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns a copy of all captured requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent captured request, or a zero Request when none
// was served yet.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}
