// Package explorer implements the search and detail operations of the movie
// explorer on top of state.Store. Operations block until their request
// resolves and are meant to run inside Bubble Tea commands or CLI handlers.
package explorer
