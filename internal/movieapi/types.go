package movieapi

import "strings"

// NotAvailable is the literal the movie API returns for fields that have no data.
const NotAvailable = "N/A"

// MovieSummary mirrors an entry of GET /movies/search.
type MovieSummary struct {
	ID     string `json:"imdbID"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"`
	Type   string `json:"type"`
}

// MovieDetail mirrors GET /movies/{id}. Every optional field may carry NotAvailable.
type MovieDetail struct {
	ID       string `json:"imdbID"`
	Title    string `json:"title"`
	Year     string `json:"year"`
	Poster   string `json:"poster"`
	Type     string `json:"type"`
	Rating   string `json:"imdbRating"`
	Director string `json:"director"`
	Actors   string `json:"actors"`
	Genre    string `json:"genre"`
	Runtime  string `json:"runtime"`
	Plot     string `json:"plot"`
}

// Summary returns the summary subset of the detail record.
func (d MovieDetail) Summary() MovieSummary {
	return MovieSummary{
		ID:     d.ID,
		Title:  d.Title,
		Year:   d.Year,
		Poster: d.Poster,
		Type:   d.Type,
	}
}

// Available reports whether value carries data, i.e. it is neither blank nor
// the NotAvailable sentinel.
func Available(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && trimmed != NotAvailable
}
