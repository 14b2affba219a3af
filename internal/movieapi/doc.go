// Package movieapi provides an HTTP client for the movie metadata API.
//
// # Overview
//
// The explorer talks to a small read-only API that fronts a public movie
// database. The base URL is supplied by configuration and may carry a path
// prefix (e.g. "http://localhost:8080/api"); endpoints are resolved below it.
//
// # API Endpoints
//
//   - GET {base}/movies/search?title={query}: JSON array of MovieSummary
//   - GET {base}/movies/{id}: a single MovieDetail object
//
// Search results are returned exactly as received. Deduplication is a state
// concern and lives in package state.
//
// # Sentinel Values
//
// Any string field may hold NotAvailable ("N/A"). Use Available to decide
// whether a field should be shown.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: marquee/0.1
//   - Carry a fresh X-Request-ID so diagnostic log lines can be correlated
//   - Are bounded by the client timeout (WithTimeout, default 10s)
//
// # Error Handling
//
// Failures wrap one of two sentinels:
//
//   - ErrNetwork: connection failures, timeouts, and 4xx/5xx responses
//   - ErrParse: bodies that are not the expected JSON shape, including a
//     null detail body
//
// Callers classify with errors.Is.
//
// # Testing
//
// Package movieapitest runs a fixture-backed server with knobs for failure
// statuses, raw bodies and paused routes.
package movieapi
