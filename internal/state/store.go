package state

import (
	"strings"
	"sync"

	"github.com/five82/marquee/internal/movieapi"
)

// UIState is everything the view renders from.
type UIState struct {
	Query         string
	Results       []movieapi.MovieSummary
	SearchLoading bool
	Selected      *movieapi.MovieDetail
	DetailLoading bool

	// Last contained failures. Rendering never branches on these; they feed
	// the diagnostics pane and headless exit codes.
	SearchErr error
	DetailErr error

	// Version increments on every transition.
	Version uint64
}

// TrimmedQuery returns the query as it is validated and sent.
func (s UIState) TrimmedQuery() string {
	return strings.TrimSpace(s.Query)
}

// Ticket identifies one dispatched request.
type Ticket uint64

// Store coordinates concurrent transitions of the UI state and notifies
// subscribers after each one.
type Store struct {
	mu         sync.RWMutex
	state      UIState
	latestOnly bool
	searchSeq  Ticket
	detailSeq  Ticket
	subs       map[int]chan struct{}
	nextSub    int
}

// NewStore returns an empty store. With latestOnly set, a request only
// applies its result when no newer request of the same kind was dispatched
// after it; otherwise the last response to arrive wins.
func NewStore(latestOnly bool) *Store {
	return &Store{latestOnly: latestOnly, subs: make(map[int]chan struct{})}
}

// LatestOnly reports whether stale responses are dropped.
func (s *Store) LatestOnly() bool {
	return s.latestOnly
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Results = cloneResults(s.state.Results)
	if s.state.Selected != nil {
		detail := *s.state.Selected
		snap.Selected = &detail
	}
	return snap
}

// SetQuery records the search field text.
func (s *Store) SetQuery(query string) {
	s.mutate(func(st *UIState) bool {
		if st.Query == query {
			return false
		}
		st.Query = query
		return true
	})
}

// BeginSearch marks a search as in flight and hands out its ticket.
func (s *Store) BeginSearch() Ticket {
	var ticket Ticket
	s.mutate(func(st *UIState) bool {
		s.searchSeq++
		ticket = s.searchSeq
		st.SearchLoading = true
		return true
	})
	return ticket
}

// FinishSearch resolves the search holding ticket. On success results replace
// the previous list after deduplication; on failure the previous list stays.
// It reports whether the outcome was applied.
func (s *Store) FinishSearch(ticket Ticket, results []movieapi.MovieSummary, err error) bool {
	applied := false
	s.mutate(func(st *UIState) bool {
		if s.latestOnly && ticket != s.searchSeq {
			return false
		}
		applied = true
		st.SearchLoading = false
		if err != nil {
			st.SearchErr = err
			return true
		}
		st.SearchErr = nil
		st.Results = Dedupe(results)
		return true
	})
	return applied
}

// BeginDetail clears the current selection and marks a detail lookup as in
// flight, so a stale record is never shown while the next one loads.
func (s *Store) BeginDetail() Ticket {
	var ticket Ticket
	s.mutate(func(st *UIState) bool {
		s.detailSeq++
		ticket = s.detailSeq
		st.Selected = nil
		st.DetailLoading = true
		return true
	})
	return ticket
}

// FinishDetail resolves the detail lookup holding ticket and reports whether
// the outcome was applied.
func (s *Store) FinishDetail(ticket Ticket, detail *movieapi.MovieDetail, err error) bool {
	applied := false
	s.mutate(func(st *UIState) bool {
		if s.latestOnly && ticket != s.detailSeq {
			return false
		}
		applied = true
		st.DetailLoading = false
		if err != nil || detail == nil {
			st.DetailErr = err
			return true
		}
		st.DetailErr = nil
		dup := *detail
		st.Selected = &dup
		return true
	})
	return applied
}

// Dismiss closes the detail modal.
func (s *Store) Dismiss() {
	s.mutate(func(st *UIState) bool {
		if st.Selected == nil {
			return false
		}
		st.Selected = nil
		return true
	})
}

// Subscribe returns a channel that receives a signal after state changes.
// Signals coalesce: a slow reader sees one pending signal, then reads the
// latest Snapshot. The returned cancel func releases the subscription.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store) mutate(fn func(*UIState) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.state) {
		return
	}
	s.state.Version++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func cloneResults(items []movieapi.MovieSummary) []movieapi.MovieSummary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]movieapi.MovieSummary, len(items))
	copy(dup, items)
	return dup
}
