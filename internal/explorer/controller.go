package explorer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/movieapi"
	"github.com/five82/marquee/internal/state"
)

// Controller runs the search and detail operations against the store.
type Controller struct {
	store   *state.Store
	fetcher movieapi.Fetcher
	logger  zerolog.Logger
}

// New returns a Controller. The logger is used as given, so callers tag the
// component. A nil logger discards diagnostics.
func New(store *state.Store, fetcher movieapi.Fetcher, logger *zerolog.Logger) *Controller {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Controller{store: store, fetcher: fetcher, logger: l}
}

// Store returns the state the controller mutates.
func (c *Controller) Store() *state.Store {
	return c.store
}

// SetQuery records the search field text.
func (c *Controller) SetQuery(query string) {
	c.store.SetQuery(query)
}

// CanSearch reports whether the current query would dispatch a request.
func (c *Controller) CanSearch() bool {
	return c.store.Snapshot().TrimmedQuery() != ""
}

// Search looks up the current query and blocks until it resolves. A blank
// query is a no-op and returns false. Failures are logged and contained; the
// loading flag is released on every path.
func (c *Controller) Search(ctx context.Context) bool {
	query := c.store.Snapshot().TrimmedQuery()
	if query == "" {
		return false
	}

	ticket := c.store.BeginSearch()
	start := time.Now()
	var (
		results []movieapi.MovieSummary
		err     error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("search panicked: %v", r)
		}
		applied := c.store.FinishSearch(ticket, results, err)
		if err != nil {
			c.logger.Warn().Err(err).Str("query", query).Msg("search error")
			return
		}
		c.logger.Info().
			Str("query", query).
			Int("received", len(results)).
			Bool("applied", applied).
			Dur("elapsed", time.Since(start)).
			Msg("search completed")
	}()

	results, err = c.fetcher.SearchMovies(ctx, query)
	return true
}

// ShowDetails clears the current selection, then loads the full record for
// id and blocks until it resolves. Failures leave the selection absent.
func (c *Controller) ShowDetails(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	ticket := c.store.BeginDetail()
	var (
		detail *movieapi.MovieDetail
		err    error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("details panicked: %v", r)
		}
		applied := c.store.FinishDetail(ticket, detail, err)
		if err != nil {
			c.logger.Warn().Err(err).Str("id", id).Msg("details error")
			return
		}
		c.logger.Debug().Str("id", id).Bool("applied", applied).Msg("details loaded")
	}()

	detail, err = c.fetcher.FetchMovie(ctx, id)
}

// Dismiss closes the detail modal.
func (c *Controller) Dismiss() {
	c.store.Dismiss()
}
