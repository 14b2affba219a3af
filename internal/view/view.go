package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/marquee/internal/movieapi"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/state"
)

// Fixed copy shown by every front end.
const (
	AppTitle          = "Movie Explorer"
	AppTagline        = "Discover your next favorite film"
	SearchingText     = "Searching for movies..."
	EmptyTitle        = "No movies found"
	EmptyHint         = "Try searching for a different title"
	SearchHint        = "Press Enter or click Search to find movies"
	DetailLoadingText = "Loading movie details..."
	IMDbLinkText      = "View on IMDb ↗"
)

// DefaultIMDbURLTemplate formats a title page link from an id.
const DefaultIMDbURLTemplate = "https://www.imdb.com/title/%s"

// Options carries the rendering inputs that do not live in UIState.
type Options struct {
	Placeholder     string
	IMDbURLTemplate string
	// PosterFailed reports posters that failed to load at runtime. May be nil.
	PosterFailed func(url string) bool
}

// Screen is everything visible for one UIState.
type Screen struct {
	Query          string
	SearchDisabled bool
	Hint           string

	Searching bool
	Empty     bool
	Heading   string
	Cards     []Card

	Modal *Modal
}

// Card is one search result in the grid.
type Card struct {
	ID     string
	Title  string
	Year   string
	Poster string
	Badge  string
}

// Modal is the detail overlay. When Loading is set every other field is
// empty.
type Modal struct {
	Loading bool

	ID      string
	Title   string
	Year    string
	Poster  string
	Rating  string
	Fields  []Field
	Plot    string
	IMDbURL string
}

// Field is a labelled detail line.
type Field struct {
	Label string
	Value string
}

// Render maps state to what should be on screen. It has no side effects.
func Render(st state.UIState, opts Options) Screen {
	query := st.TrimmedQuery()
	scr := Screen{
		Query:          st.Query,
		SearchDisabled: st.SearchLoading || query == "",
		Searching:      st.SearchLoading,
		Empty:          !st.SearchLoading && len(st.Results) == 0 && query != "",
	}
	if query != "" && !st.SearchLoading {
		scr.Hint = SearchHint
	}

	if n := len(st.Results); n > 0 {
		scr.Heading = Heading(n)
		scr.Cards = make([]Card, 0, n)
		for _, m := range st.Results {
			scr.Cards = append(scr.Cards, Card{
				ID:     m.ID,
				Title:  m.Title,
				Year:   m.Year,
				Poster: poster.Source(m.Poster, opts.Placeholder, opts.PosterFailed),
				Badge:  Badge(m.Type),
			})
		}
	}

	switch {
	case st.DetailLoading:
		scr.Modal = &Modal{Loading: true}
	case st.Selected != nil:
		scr.Modal = renderDetail(st.Selected, opts)
	}
	return scr
}

func renderDetail(d *movieapi.MovieDetail, opts Options) *Modal {
	m := &Modal{
		ID:     d.ID,
		Title:  d.Title,
		Year:   d.Year,
		Poster: poster.Source(d.Poster, opts.Placeholder, opts.PosterFailed),
	}
	if movieapi.Available(d.Rating) {
		m.Rating = strings.TrimSpace(d.Rating)
	}
	for _, f := range []Field{
		{Label: "Director", Value: d.Director},
		{Label: "Cast", Value: d.Actors},
		{Label: "Genre", Value: d.Genre},
		{Label: "Runtime", Value: d.Runtime},
	} {
		if movieapi.Available(f.Value) {
			f.Value = strings.TrimSpace(f.Value)
			m.Fields = append(m.Fields, f)
		}
	}
	if movieapi.Available(d.Plot) {
		m.Plot = strings.TrimSpace(d.Plot)
	}
	m.IMDbURL = IMDbURL(opts.IMDbURLTemplate, d.ID)
	return m
}

// Heading returns the result count line.
func Heading(n int) string {
	if n == 1 {
		return "Found 1 movie"
	}
	return fmt.Sprintf("Found %d movies", n)
}

// Badge formats a result type for display ("movie" becomes "Movie").
func Badge(kind string) string {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return ""
	}
	return cases.Title(language.English).String(kind)
}

// RatingLine formats a rating for display, or "" when absent.
func RatingLine(rating string) string {
	if rating == "" {
		return ""
	}
	return "★ " + rating + "/10 IMDb"
}

// IMDbURL returns the title page for id, or "" when id is blank. An empty
// template uses DefaultIMDbURLTemplate; a template without a verb gets the id
// appended.
func IMDbURL(template, id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if strings.TrimSpace(template) == "" {
		template = DefaultIMDbURLTemplate
	}
	if !strings.Contains(template, "%s") {
		return strings.TrimRight(template, "/") + "/" + id
	}
	return fmt.Sprintf(template, id)
}
