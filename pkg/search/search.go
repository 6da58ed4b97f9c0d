// Package search debounces catalog queries so a user typing does not
// produce a request per keystroke.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bingetonic/bingetonic/pkg/tmdb"
)

const (
	// DefaultDelay is how long typing must pause before a query fires.
	DefaultDelay = 500 * time.Millisecond
	// DefaultMinLength is the shortest query that triggers a search.
	DefaultMinLength = 3
)

// Result is the outcome of one fired query. A query below the minimum
// length produces an empty Result so clients clear stale suggestions.
type Result struct {
	Query    string
	Response *tmdb.SearchTVResponse
	Err      error
}

// Debouncer coalesces a stream of queries. Only the latest query fires
// after the delay, and results of superseded queries are dropped.
type Debouncer struct {
	client    tmdb.ClientInterface
	delay     time.Duration
	minLength int
	results   chan Result
	done      chan struct{}

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithDelay overrides the debounce delay.
func WithDelay(delay time.Duration) Option {
	return func(d *Debouncer) {
		d.delay = delay
	}
}

// WithMinLength overrides the minimum query length.
func WithMinLength(length int) Option {
	return func(d *Debouncer) {
		d.minLength = length
	}
}

// New creates a Debouncer over the given catalog client.
func New(client tmdb.ClientInterface, opts ...Option) *Debouncer {
	d := &Debouncer{
		client:    client,
		delay:     DefaultDelay,
		minLength: DefaultMinLength,
		results:   make(chan Result),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Results delivers query outcomes in the order they resolve. Superseded
// queries never appear.
func (d *Debouncer) Results() <-chan Result {
	return d.results
}

// Query records the latest input. Leading and trailing whitespace is
// ignored; queries below the minimum length clear results immediately
// without a catalog call.
func (d *Debouncer) Query(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}

	if len(query) < d.minLength {
		d.mu.Unlock()
		d.emit(gen, Result{Query: query})
		return
	}

	d.timer = time.AfterFunc(d.delay, func() {
		res, err := d.client.SearchTV(ctx, query)
		d.emit(gen, Result{Query: query, Response: res, Err: err})
	})
	d.mu.Unlock()
}

// Close stops any pending query. Pending results are dropped.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	close(d.done)
}

func (d *Debouncer) emit(gen uint64, result Result) {
	d.mu.Lock()
	stale := gen != d.gen
	d.mu.Unlock()
	if stale {
		return
	}

	select {
	case d.results <- result:
	case <-d.done:
	}
}
