// Package state holds the explorer's UI state and the store that guards it.
//
// # Overview
//
// UIState is the single source the view renders from: the query text, the
// deduplicated result list, the selected movie detail, and one loading flag
// per request kind. Store serialises transitions on it and notifies
// subscribers after each one, so the terminal UI re-renders from a fresh
// Snapshot instead of tracking changes itself.
//
// # Transitions
//
//   - SetQuery: record the search field text
//   - BeginSearch / FinishSearch: loading flag on, then results or kept results
//   - BeginDetail / FinishDetail: selection cleared and loading on, then detail
//   - Dismiss: selection cleared
//
// Search touches Results and SearchLoading; detail touches Selected and
// DetailLoading. The two never share fields.
//
// # Overlapping Requests
//
// Every Begin call hands out a Ticket from a per-kind counter. When the store
// is built with latestOnly, Finish calls holding an outdated ticket are
// dropped and leave the loading flag set for the newer request. Without it,
// every Finish applies and the last response to arrive wins.
//
// # Deduplication
//
// Dedupe keeps one entry per ID: first-seen position, last-seen values.
//
// # Concurrency Model
//
// Requests resolve on Bubble Tea command goroutines, so Store uses a
// sync.RWMutex. Subscribers get a capacity-1 channel; sends never block and
// bursts coalesce into one pending signal. Snapshot returns copies.
package state
