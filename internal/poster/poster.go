// Package poster decides which image a card shows and detects posters that
// fail to load so they can be swapped for the placeholder.
package poster

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/five82/marquee/internal/movieapi"
)

// DefaultPlaceholder is shown when a movie has no usable poster.
const DefaultPlaceholder = "/no-image.png"

const (
	defaultProbeTimeout = 5 * time.Second
	defaultProbeLimit   = 4
)

// Source returns the image to show for poster: the placeholder when poster is
// absent, the NotAvailable sentinel, or known to fail; otherwise poster.
// failed may be nil.
func Source(poster, placeholder string, failed func(string) bool) string {
	if strings.TrimSpace(placeholder) == "" {
		placeholder = DefaultPlaceholder
	}
	if !movieapi.Available(poster) {
		return placeholder
	}
	poster = strings.TrimSpace(poster)
	if failed != nil && failed(poster) {
		return placeholder
	}
	return poster
}

type result int

const (
	resultUnknown result = iota
	resultOK
	resultFailed
)

// Prober checks poster URLs once each and remembers which ones fail.
type Prober struct {
	http   *http.Client
	limit  int
	logger zerolog.Logger

	mu      sync.RWMutex
	results map[string]result
}

// NewProber returns a Prober. Zero timeout or limit use defaults.
func NewProber(timeout time.Duration, limit int, logger *zerolog.Logger) *Prober {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	if limit <= 0 {
		limit = defaultProbeLimit
	}
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Prober{
		http:    &http.Client{Timeout: timeout},
		limit:   limit,
		logger:  l,
		results: make(map[string]result),
	}
}

// Failed reports whether url was probed and did not load.
func (p *Prober) Failed(url string) bool {
	if p == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.results[strings.TrimSpace(url)] == resultFailed
}

// Probe checks every available poster in urls that has not been checked yet
// and returns the ones that failed during this call.
func (p *Prober) Probe(ctx context.Context, urls []string) []string {
	if p == nil {
		return nil
	}
	pending := p.claim(urls)
	if len(pending) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		failed []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for _, u := range pending {
		u := u
		g.Go(func() error {
			ok := p.check(gctx, u)
			p.mu.Lock()
			switch {
			case ok:
				p.results[u] = resultOK
			case gctx.Err() != nil:
				// Interrupted, not failed: release the claim so a later
				// Probe checks it again.
				delete(p.results, u)
				p.mu.Unlock()
				return nil
			default:
				p.results[u] = resultFailed
			}
			p.mu.Unlock()
			if !ok {
				mu.Lock()
				failed = append(failed, u)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

// claim marks unchecked URLs as in progress so concurrent Probe calls do not
// fetch the same poster twice.
func (p *Prober) claim(urls []string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, raw := range urls {
		if !movieapi.Available(raw) {
			continue
		}
		u := strings.TrimSpace(raw)
		if _, seen := p.results[u]; seen {
			continue
		}
		p.results[u] = resultUnknown
		out = append(out, u)
	}
	return out
}

func (p *Prober) check(ctx context.Context, url string) bool {
	status, err := p.request(ctx, http.MethodHead, url)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented) {
		status, err = p.request(ctx, http.MethodGet, url)
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("url", url).Msg("poster unreachable")
		return false
	}
	if status >= 400 {
		p.logger.Debug().Int("status", status).Str("url", url).Msg("poster failed to load")
		return false
	}
	return true
}

func (p *Prober) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
	return resp.StatusCode, nil
}
