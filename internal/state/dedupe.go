package state

import "github.com/five82/marquee/internal/movieapi"

// Dedupe collapses items to one entry per ID. Each ID keeps the position of
// its first occurrence and the values of its last occurrence.
func Dedupe(items []movieapi.MovieSummary) []movieapi.MovieSummary {
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int, len(items))
	out := make([]movieapi.MovieSummary, 0, len(items))
	for _, item := range items {
		if pos, ok := index[item.ID]; ok {
			out[pos] = item
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}
