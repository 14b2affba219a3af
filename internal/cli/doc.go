// Package cli defines the marquee command line.
//
// The root command starts the terminal UI. The search and show subcommands
// run the same explorer controller headless and print what the UI would show:
// the result heading and cards, or the detail fields with unavailable values
// omitted. Unlike the UI, they exit non-zero when the lookup fails, since a
// script has no other way to notice.
package cli
