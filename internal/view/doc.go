// Package view decides what the explorer shows for a given state.
//
// Render is a pure function from state.UIState to a Screen: the spinner while
// a search is in flight, the "no movies found" state once a non-empty query
// comes back empty, one Card per result, and the detail Modal (either its
// loading indicator or the movie's available fields). Missing values and the
// "N/A" sentinel are dropped here so front ends never print them.
//
// The terminal UI turns a Screen into lipgloss markup; the headless CLI
// prints it as plain text.
package view
