// Package movieapitest serves canned movie API responses for tests.
package movieapitest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/five82/marquee/internal/movieapi"
)

//go:embed testdata/fixtures.yaml
var defaultFixtures []byte

// Route names accepted by the failure and pause knobs.
const (
	RouteSearch = "search"
	RouteMovie  = "movie"
)

// Fixtures maps lowercase search titles and movie ids to canned payloads.
type Fixtures struct {
	Searches map[string][]movieapi.MovieSummary `yaml:"searches"`
	Movies   map[string]movieapi.MovieDetail    `yaml:"movies"`
}

// LoadFixtures parses a YAML fixture document.
func LoadFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	normalized := make(map[string][]movieapi.MovieSummary, len(f.Searches))
	for title, items := range f.Searches {
		normalized[normalizeTitle(title)] = items
	}
	f.Searches = normalized
	if f.Movies == nil {
		f.Movies = map[string]movieapi.MovieDetail{}
	}
	return f, nil
}

// DefaultFixtures returns the bundled fixture set.
func DefaultFixtures() Fixtures {
	f, err := LoadFixtures(defaultFixtures)
	if err != nil {
		panic(err)
	}
	return f
}

// Request records one call the server received.
type Request struct {
	Route     string
	Title     string
	ID        string
	RequestID string
	UserAgent string
}

// Server is an httptest server speaking the movie API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	fixtures Fixtures
	status   map[string]int
	raw      map[string]string
	gates    map[string]chan struct{}
	requests []Request
}

// NewServer starts a server for the given fixtures. Callers must Close it.
func NewServer(f Fixtures) *Server {
	s := &Server{
		fixtures: f,
		status:   map[string]int{},
		raw:      map[string]string{},
		gates:    map[string]chan struct{}{},
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/movies/search", s.handleSearch)
	r.Get("/movies/{id}", s.handleMovie)
	s.Server = httptest.NewServer(r)
	return s
}

// SetFixtures replaces the canned payloads.
func (s *Server) SetFixtures(f Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures = f
}

// FailWith makes route answer with the given HTTP status. Zero clears it.
func (s *Server) FailWith(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.status, route)
		return
	}
	s.status[route] = status
}

// RespondRaw makes route answer 200 with body verbatim. Empty clears it.
func (s *Server) RespondRaw(route, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if body == "" {
		delete(s.raw, route)
		return
	}
	s.raw[route] = body
}

// Pause holds every request on route until the returned release is called.
func (s *Server) Pause(route string) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[route] = gate
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.gates[route] == gate {
				delete(s.gates, route)
			}
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Requests returns a copy of the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// BaseURL returns the API root, suitable for movieapi.NewClient.
func (s *Server) BaseURL() string {
	return s.Server.URL
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	status, raw, gate, fixtures := s.record(RouteSearch, Request{Route: RouteSearch, Title: title}, r)
	if !wait(r, gate) {
		return
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if raw != "" {
		_, _ = w.Write([]byte(raw))
		return
	}
	items := fixtures.Searches[normalizeTitle(title)]
	if items == nil {
		items = []movieapi.MovieSummary{}
	}
	writeJSON(w, items)
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status, raw, gate, fixtures := s.record(RouteMovie, Request{Route: RouteMovie, ID: id}, r)
	if !wait(r, gate) {
		return
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if raw != "" {
		_, _ = w.Write([]byte(raw))
		return
	}
	movie, ok := fixtures.Movies[id]
	if !ok {
		// The upstream backend answers unknown ids with a null body.
		writeJSON(w, nil)
		return
	}
	writeJSON(w, movie)
}

func (s *Server) record(route string, req Request, r *http.Request) (int, string, chan struct{}, Fixtures) {
	req.RequestID = r.Header.Get(movieapi.RequestIDHeader)
	req.UserAgent = r.Header.Get("User-Agent")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.status[route], s.raw[route], s.gates[route], s.fixtures
}

func wait(r *http.Request, gate chan struct{}) bool {
	if gate == nil {
		return true
	}
	select {
	case <-gate:
		return true
	case <-r.Context().Done():
		return false
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
