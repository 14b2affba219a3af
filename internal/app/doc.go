// Package app is the composition root for marquee.
//
// NewSession loads configuration, builds the logger, the movie API client,
// the state store, and the explorer controller, plus the poster prober when
// the session is interactive and probing is enabled. Run hands a session to
// the terminal UI and blocks until it exits; the headless commands in
// internal/cli drive the same session's controller directly.
//
// # Error Handling
//
// Fatal errors (returned from NewSession and Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created
//   - API base URL cannot be parsed
//
// Everything that happens after startup (failed searches, failed detail
// lookups, unreachable posters) is contained by the controllers and only
// shows up in the log.
package app
