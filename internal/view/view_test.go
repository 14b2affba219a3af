package view

import (
	"testing"

	"github.com/five82/marquee/internal/movieapi"
	"github.com/five82/marquee/internal/state"
)

func TestRender_DecisionTable(t *testing.T) {
	results := []movieapi.MovieSummary{{ID: "tt1", Title: "A", Year: "2001", Poster: "N/A", Type: "movie"}}
	cases := []struct {
		name          string
		st            state.UIState
		wantSearching bool
		wantEmpty     bool
		wantCards     int
		wantHint      bool
		wantDisabled  bool
	}{
		{name: "initial", st: state.UIState{}, wantDisabled: true},
		{name: "whitespace query", st: state.UIState{Query: "   "}, wantDisabled: true},
		{name: "typed, not searched", st: state.UIState{Query: "batman"}, wantEmpty: true, wantHint: true},
		{name: "searching", st: state.UIState{Query: "batman", SearchLoading: true}, wantSearching: true, wantDisabled: true},
		{name: "searching keeps old grid", st: state.UIState{Query: "batman", SearchLoading: true, Results: results}, wantSearching: true, wantCards: 1, wantDisabled: true},
		{name: "results", st: state.UIState{Query: "batman", Results: results}, wantCards: 1, wantHint: true},
		{name: "results without query", st: state.UIState{Results: results}, wantCards: 1, wantDisabled: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scr := Render(tc.st, Options{})
			if scr.Searching != tc.wantSearching {
				t.Fatalf("Searching = %v, want %v", scr.Searching, tc.wantSearching)
			}
			if scr.Empty != tc.wantEmpty {
				t.Fatalf("Empty = %v, want %v", scr.Empty, tc.wantEmpty)
			}
			if len(scr.Cards) != tc.wantCards {
				t.Fatalf("len(Cards) = %d, want %d", len(scr.Cards), tc.wantCards)
			}
			if (scr.Hint != "") != tc.wantHint {
				t.Fatalf("Hint = %q, want present=%v", scr.Hint, tc.wantHint)
			}
			if scr.SearchDisabled != tc.wantDisabled {
				t.Fatalf("SearchDisabled = %v, want %v", scr.SearchDisabled, tc.wantDisabled)
			}
			if scr.Modal != nil {
				t.Fatalf("Modal = %+v, want nil", scr.Modal)
			}
		})
	}
}

func TestRender_Cards(t *testing.T) {
	st := state.UIState{Results: []movieapi.MovieSummary{
		{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Poster: "https://img/bb.jpg", Type: "movie"},
		{ID: "tt0096895", Title: "Batman", Year: "1989", Poster: "N/A", Type: "movie"},
		{ID: "tt0106062", Title: "Matrix", Year: "1993", Poster: "https://img/broken.jpg", Type: "series"},
	}}
	scr := Render(st, Options{
		Placeholder:  "/no-image.png",
		PosterFailed: func(u string) bool { return u == "https://img/broken.jpg" },
	})

	if scr.Heading != "Found 3 movies" {
		t.Fatalf("Heading = %q", scr.Heading)
	}
	wantPosters := []string{"https://img/bb.jpg", "/no-image.png", "/no-image.png"}
	for i, c := range scr.Cards {
		if c.Poster != wantPosters[i] {
			t.Fatalf("card %d poster = %q, want %q", i, c.Poster, wantPosters[i])
		}
		if c.ID != st.Results[i].ID || c.Title != st.Results[i].Title || c.Year != st.Results[i].Year {
			t.Fatalf("card %d = %+v, want fields of %+v", i, c, st.Results[i])
		}
	}
	if scr.Cards[0].Badge != "Movie" || scr.Cards[2].Badge != "Series" {
		t.Fatalf("badges = %q, %q", scr.Cards[0].Badge, scr.Cards[2].Badge)
	}
}

func TestRender_ModalLoadingSuppressesDetail(t *testing.T) {
	st := state.UIState{
		DetailLoading: true,
		Selected:      &movieapi.MovieDetail{ID: "tt1", Title: "Stale"},
	}
	scr := Render(st, Options{})
	if scr.Modal == nil || !scr.Modal.Loading {
		t.Fatalf("Modal = %+v, want loading", scr.Modal)
	}
	if scr.Modal.Title != "" || len(scr.Modal.Fields) != 0 {
		t.Fatalf("loading modal leaked detail: %+v", scr.Modal)
	}
}

func TestRender_ModalHidesUnavailableFields(t *testing.T) {
	st := state.UIState{Selected: &movieapi.MovieDetail{
		ID: "tt0096895", Title: "Batman", Year: "1989", Poster: "N/A",
		Rating: "7.5", Director: "Tim Burton", Actors: "N/A", Genre: "",
		Runtime: "N/A", Plot: "N/A",
	}}
	scr := Render(st, Options{Placeholder: "/no-image.png"})
	m := scr.Modal
	if m == nil || m.Loading {
		t.Fatalf("Modal = %+v, want detail", m)
	}
	if m.Poster != "/no-image.png" {
		t.Fatalf("Poster = %q, want placeholder", m.Poster)
	}
	if m.Rating != "7.5" {
		t.Fatalf("Rating = %q", m.Rating)
	}
	if len(m.Fields) != 1 || m.Fields[0] != (Field{Label: "Director", Value: "Tim Burton"}) {
		t.Fatalf("Fields = %+v, want only Director", m.Fields)
	}
	if m.Plot != "" {
		t.Fatalf("Plot = %q, want hidden", m.Plot)
	}
	if m.IMDbURL != "https://www.imdb.com/title/tt0096895" {
		t.Fatalf("IMDbURL = %q", m.IMDbURL)
	}
}

func TestRender_ModalAllFields(t *testing.T) {
	st := state.UIState{Selected: &movieapi.MovieDetail{
		ID: "tt0372784", Title: "Batman Begins", Rating: "N/A",
		Director: "Christopher Nolan", Actors: "Christian Bale", Genre: "Action",
		Runtime: "140 min", Plot: "Bruce Wayne begins.",
	}}
	m := Render(st, Options{}).Modal
	labels := make([]string, 0, len(m.Fields))
	for _, f := range m.Fields {
		labels = append(labels, f.Label)
	}
	want := []string{"Director", "Cast", "Genre", "Runtime"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
	if m.Rating != "" {
		t.Fatalf("Rating = %q, want hidden sentinel", m.Rating)
	}
	if m.Plot != "Bruce Wayne begins." {
		t.Fatalf("Plot = %q", m.Plot)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(1); got != "Found 1 movie" {
		t.Fatalf("Heading(1) = %q", got)
	}
	if got := Heading(2); got != "Found 2 movies" {
		t.Fatalf("Heading(2) = %q", got)
	}
}

func TestIMDbURL(t *testing.T) {
	cases := []struct {
		template, id, want string
	}{
		{"", "tt1", "https://www.imdb.com/title/tt1"},
		{"https://example.test/t/%s/", "tt1", "https://example.test/t/tt1/"},
		{"https://example.test/t/", "tt1", "https://example.test/t/tt1"},
		{"", " ", ""},
	}
	for _, tc := range cases {
		if got := IMDbURL(tc.template, tc.id); got != tc.want {
			t.Fatalf("IMDbURL(%q, %q) = %q, want %q", tc.template, tc.id, got, tc.want)
		}
	}
}

func TestRatingLine(t *testing.T) {
	if got := RatingLine("8.2"); got != "★ 8.2/10 IMDb" {
		t.Fatalf("RatingLine = %q", got)
	}
	if got := RatingLine(""); got != "" {
		t.Fatalf("RatingLine(\"\") = %q", got)
	}
}
