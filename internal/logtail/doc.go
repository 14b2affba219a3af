// Package logtail reads the end of marquee's log file for the diagnostics
// pane.
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) regardless of file size and lines come back in
// chronological order. A missing file is not an error; the pane simply shows
// nothing until the first entry is written.
//
// The log file holds zerolog JSON lines. FormatLine turns each into the same
// compact form zerolog's console writer prints on a terminal:
//
//	14:32:15 WRN search error component=explorer error="search movies: ..." query=batman
//
// Anything that is not a JSON object passes through untouched.
package logtail
