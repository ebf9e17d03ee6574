// Package mockserver runs a fake ConvertKit API on a local httptest server.
//
// The server answers a fixed set of routes seeded with the fixtures used
// across the test suites and records every request it receives so tests can
// assert on the exact body, query and headers that were sent.
package mockserver

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Credentials accepted by the seeded routes.
const (
	ValidKey    = "valid_key"
	ValidSecret = "valid_secret"
)

// BasePath is the path prefix the server mounts the API under.
const BasePath = "/v3"

// Route is a canned response for one method, path and query.
type Route struct {
	Name        string
	Method      string
	Path        string
	Query       url.Values
	Status      int
	ContentType string
	Body        string
}

// Request is a request received by the server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake ConvertKit API.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	routes   []Route
	requests []Request
}

// New starts a server seeded with DefaultRoutes.
func New() *Server {
	s := &Server{routes: DefaultRoutes()}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// BaseURL returns the API root to hand to a client.
func (s *Server) BaseURL() string {
	return s.srv.URL + BasePath
}

// Close shuts the server down.
func (s *Server) Close() {
	s.srv.Close()
}

// Handle registers a route that takes precedence over the existing ones.
func (s *Server) Handle(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append([]Route{route}, s.routes...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	route, ok := s.match(r)
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "NOT FOUND: %s", r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", route.ContentType)
	w.WriteHeader(route.Status)
	io.WriteString(w, route.Body)
}

func (s *Server) match(r *http.Request) (Route, bool) {
	for _, route := range s.routes {
		if r.URL.Path != BasePath+route.Path {
			continue
		}
		if r.Method != route.Method {
			continue
		}
		if r.URL.Query().Encode() != route.Query.Encode() {
			continue
		}
		return route, true
	}
	return Route{}, false
}

func keyQuery() url.Values {
	return url.Values{"api_key": {ValidKey}}
}

func secretQuery() url.Values {
	return url.Values{"api_secret": {ValidSecret}}
}

// DefaultRoutes returns the seeded fixtures.
func DefaultRoutes() []Route {
	return []Route{
		{
			Name:        "Existing Form",
			Method:      http.MethodGet,
			Path:        "/forms/1",
			Query:       keyQuery(),
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        `{"id":1234,"name":"Form Name","created_at":"2020-01-01T20:30:40.000Z","type":"hosted","format":null,"embed_js":"https://somewhere.ck.page/foo/index.js","embed_url":"https://somewhere.ck.page/foo","archived":false,"uid":"foo"}`,
		},
		{
			Name:        "Form Not Found",
			Method:      http.MethodGet,
			Path:        "/forms/2",
			Query:       keyQuery(),
			Status:      http.StatusNotFound,
			ContentType: "application/json",
			Body:        `{"error":"Not Found","message":"The entity you were trying to find doesn't exist"}`,
		},
		{
			Name:        "List Tags",
			Method:      http.MethodGet,
			Path:        "/tags",
			Query:       keyQuery(),
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        `{"tags":[{"id":123,"name":"Tag 1","created_at":"2022-05-05T11:45:26.000Z"},{"id":456,"name":"Tag 2","created_at":"2022-05-05T11:45:33.000Z"}]}`,
		},
		{
			Name:        "Create Tags",
			Method:      http.MethodPost,
			Path:        "/tags",
			Query:       secretQuery(),
			Status:      http.StatusCreated,
			ContentType: "application/json",
			Body:        `[{"id":567,"name":"Tag 4","created_at":"2022-05-05T12:43:47.000Z"},{"id":890,"name":"Tag 5","created_at":"2022-05-05T12:43:47.000Z"}]`,
		},
		{
			Name:        "Successful Subscription",
			Method:      http.MethodPost,
			Path:        "/forms/1/subscribe",
			Query:       keyQuery(),
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        `{"subscription":{"id":123,"state":"inactive","created_at":"2022-05-05T14:49:20.000Z","source":"API::V3::SubscriptionsController (external)","referrer":null,"subscribable_id":123,"subscribable_type":"form","subscriber":{"id":123}}}`,
		},
	}
}
