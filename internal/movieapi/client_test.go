package movieapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/five82/marquee/internal/movieapi"
	"github.com/five82/marquee/internal/movieapi/movieapitest"
)

func newClient(t *testing.T, base string) *movieapi.Client {
	t.Helper()
	c, err := movieapi.NewClient(base, movieapi.WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestClient_SearchEscapesTitleAndKeepsDuplicates(t *testing.T) {
	t.Parallel()

	srv := movieapitest.NewServer(movieapitest.DefaultFixtures())
	t.Cleanup(srv.Close)

	c := newClient(t, srv.BaseURL())
	items, err := c.SearchMovies(context.Background(), "  Matrix ")
	if err != nil {
		t.Fatalf("SearchMovies returned error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("SearchMovies returned %d items, want 4 (client does not dedupe)", len(items))
	}

	_, err = c.SearchMovies(context.Background(), "rock & roll?")
	if err != nil {
		t.Fatalf("SearchMovies returned error: %v", err)
	}
	reqs := srv.Requests()
	if got := reqs[len(reqs)-1].Title; got != "rock & roll?" {
		t.Fatalf("server saw title %q, want %q", got, "rock & roll?")
	}
	if reqs[0].RequestID == "" || reqs[0].RequestID == reqs[1].RequestID {
		t.Fatalf("request ids = %q, %q, want distinct non-empty ids", reqs[0].RequestID, reqs[1].RequestID)
	}
	if !strings.HasPrefix(reqs[0].UserAgent, "marquee/") {
		t.Fatalf("User-Agent = %q, want marquee/*", reqs[0].UserAgent)
	}
}

func TestClient_BasePathIsPreserved(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	c := newClient(t, server.URL+"/api/")
	if _, err := c.SearchMovies(context.Background(), "star wars"); err != nil {
		t.Fatalf("SearchMovies returned error: %v", err)
	}
	if gotPath != "/api/movies/search" {
		t.Fatalf("path = %q, want /api/movies/search", gotPath)
	}
	if gotQuery != "title=star+wars" {
		t.Fatalf("query = %q, want title=star+wars", gotQuery)
	}
}

func TestClient_FetchMovie(t *testing.T) {
	t.Parallel()

	srv := movieapitest.NewServer(movieapitest.DefaultFixtures())
	t.Cleanup(srv.Close)
	c := newClient(t, srv.BaseURL())

	movie, err := c.FetchMovie(context.Background(), "tt0372784")
	if err != nil {
		t.Fatalf("FetchMovie returned error: %v", err)
	}
	if movie.Title != "Batman Begins" || movie.Director != "Christopher Nolan" || movie.Rating != "8.2" {
		t.Fatalf("FetchMovie = %#v, want Batman Begins by Nolan rated 8.2", movie)
	}

	_, err = c.FetchMovie(context.Background(), "tt-missing")
	if !errors.Is(err, movieapi.ErrParse) {
		t.Fatalf("FetchMovie(unknown) error = %v, want ErrParse for null body", err)
	}

	if _, err := c.FetchMovie(context.Background(), "  "); err == nil {
		t.Fatalf("FetchMovie(blank) returned nil error, want error")
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	srv := movieapitest.NewServer(movieapitest.DefaultFixtures())
	t.Cleanup(srv.Close)
	c := newClient(t, srv.BaseURL())

	srv.FailWith(movieapitest.RouteSearch, http.StatusBadGateway)
	_, err := c.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrNetwork) || !strings.Contains(err.Error(), "returned status 502") {
		t.Fatalf("SearchMovies error = %v, want ErrNetwork with status 502", err)
	}

	srv.FailWith(movieapitest.RouteSearch, 0)
	srv.RespondRaw(movieapitest.RouteSearch, "<html>nope</html>")
	_, err = c.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrParse) {
		t.Fatalf("SearchMovies error = %v, want ErrParse", err)
	}

	srv.RespondRaw(movieapitest.RouteSearch, `{"Response":"False"}`)
	_, err = c.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrParse) {
		t.Fatalf("SearchMovies error = %v, want ErrParse for object body", err)
	}

	srv.RespondRaw(movieapitest.RouteSearch, "null")
	items, err := c.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrParse) || items != nil {
		t.Fatalf("SearchMovies = %v, %v, want nil and ErrParse for null body", items, err)
	}

	srv.RespondRaw(movieapitest.RouteSearch, `[{"imdbID":"tt0372784","title":"Batman Begins"}] trailing garbage`)
	_, err = c.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrParse) {
		t.Fatalf("SearchMovies error = %v, want ErrParse for trailing data", err)
	}

	srv.RespondRaw(movieapitest.RouteSearch, "[]\n")
	items, err = c.SearchMovies(context.Background(), "batman")
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("SearchMovies = %#v, %v, want empty list", items, err)
	}

	srv.RespondRaw(movieapitest.RouteMovie, `{"imdbID":"tt0372784","title":"Batman Begins"}{"imdbID":"x"}`)
	_, err = c.FetchMovie(context.Background(), "tt0372784")
	if !errors.Is(err, movieapi.ErrParse) {
		t.Fatalf("FetchMovie error = %v, want ErrParse for trailing data", err)
	}

	dead := newClient(t, "127.0.0.1:1")
	_, err = dead.SearchMovies(context.Background(), "batman")
	if !errors.Is(err, movieapi.ErrNetwork) {
		t.Fatalf("SearchMovies error = %v, want ErrNetwork", err)
	}
}

func TestNewClient_RejectsHostlessURL(t *testing.T) {
	if _, err := movieapi.NewClient("http:///api"); err == nil {
		t.Fatalf("NewClient returned nil error, want missing host error")
	}
	c, err := movieapi.NewClient("")
	if err != nil {
		t.Fatalf("NewClient(\"\") returned error: %v", err)
	}
	if c.BaseURL() != "http://localhost:8080/api" {
		t.Fatalf("BaseURL = %q, want default", c.BaseURL())
	}
}

func TestAvailable(t *testing.T) {
	cases := map[string]bool{
		"":            false,
		"  ":          false,
		"N/A":         false,
		" N/A ":       false,
		"Tim Burton":  true,
		"n/a (later)": true,
	}
	for in, want := range cases {
		if got := movieapi.Available(in); got != want {
			t.Fatalf("Available(%q) = %v, want %v", in, got, want)
		}
	}
}
