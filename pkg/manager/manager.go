// Package manager orchestrates the show tracker: catalog search,
// watchlist operations in both anonymous and signed-in mode, account
// lifecycle, and the background availability refresh.
package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/availability"
	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/bingetonic/bingetonic/pkg/search"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/bingetonic/bingetonic/pkg/storage"
	"github.com/bingetonic/bingetonic/pkg/tmdb"
	"github.com/bingetonic/bingetonic/pkg/watchlist"
	"github.com/go-playground/validator/v10"
)

type TMDBClientInterface tmdb.ClientInterface

type Manager struct {
	tmdb      TMDBClientInterface
	estimator *availability.Estimator
	storage   storage.Storage
	local     *watchlist.LocalStore
	localKV   kv.Store
	sessions  *session.Manager
	gate      *session.Gate
	validate  *validator.Validate
	refresh   config.Refresh
	refreshCh chan struct{}
}

// Option configures a Manager.
type Option func(*Manager)

// WithEstimator overrides the availability estimator, used by tests to
// pin the clock.
func WithEstimator(estimator *availability.Estimator) Option {
	return func(m *Manager) {
		m.estimator = estimator
	}
}

// New creates a Manager. localKV backs the anonymous watchlist and the
// signed-in mirror; storage may only be hit for signed-in requests.
func New(tmdbClient TMDBClientInterface, store storage.Storage, localKV kv.Store, sessions *session.Manager, refresh config.Refresh, opts ...Option) *Manager {
	if refresh.Interval <= 0 {
		refresh.Interval = time.Hour
	}
	if refresh.StaleAge <= 0 {
		refresh.StaleAge = 24 * time.Hour
	}
	if refresh.BatchSize <= 0 {
		refresh.BatchSize = 20
	}

	m := &Manager{
		tmdb:      tmdbClient,
		estimator: availability.New(tmdbClient),
		storage:   store,
		local:     watchlist.NewLocalStore(localKV),
		localKV:   localKV,
		sessions:  sessions,
		gate:      session.NewGate(session.DefaultPendingTTL),
		validate:  validator.New(),
		refresh:   refresh,
		refreshCh: make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Sessions exposes the session manager.
func (m *Manager) Sessions() *session.Manager {
	return m.sessions
}

// Catalog exposes the catalog client for callers that drive their own
// query stream, like the debounced interactive search.
func (m *Manager) Catalog() tmdb.ClientInterface {
	return m.tmdb
}

// SearchShows queries the catalog, most popular first. Queries shorter
// than the search minimum return an empty result without a catalog call.
func (m *Manager) SearchShows(ctx context.Context, query string) (*tmdb.SearchTVResponse, error) {
	if len(strings.TrimSpace(query)) < search.DefaultMinLength {
		return &tmdb.SearchTVResponse{Results: []tmdb.SearchResult{}}, nil
	}
	return m.tmdb.SearchTV(ctx, query)
}

// PrepareShow fetches a show's details and estimates availability for
// its tracked season, producing a watchlist draft.
func (m *Manager) PrepareShow(ctx context.Context, tmdbID int32) (watchlist.Show, error) {
	details, err := m.tmdb.SeriesDetails(ctx, tmdbID)
	if err != nil {
		return watchlist.Show{}, fmt.Errorf("failed to fetch show details: %w", err)
	}

	est := m.estimator.ForSeries(ctx, details)

	genres := make([]string, 0, len(details.Genres))
	for _, genre := range details.Genres {
		genres = append(genres, genre.Name)
	}

	return watchlist.Show{
		TmdbID:           details.ID,
		Title:            details.Name,
		PosterURL:        tmdb.PosterURL(details.PosterPath),
		Genre:            strings.Join(genres, ", "),
		Overview:         details.Overview,
		SeasonNumber:     est.SeasonNumber,
		TotalEpisodes:    est.Total,
		ReleasedEpisodes: est.Released,
		Status:           watchlist.StatusFor(est.Released, est.Total),
		Estimated:        est.Heuristic,
		InProduction:     details.InProduction,
		AirStatus:        details.Status,
		LastAirDate:      details.LastAirDate,
	}, nil
}

// store picks the watchlist backend for the request: the database list
// when an identity is attached, the local list otherwise.
func (m *Manager) store(ctx context.Context) watchlist.Store {
	if id, ok := session.FromCtx(ctx); ok {
		return watchlist.NewRemoteStore(m.storage, m.localKV, id.UserID)
	}
	return m.local
}

// AddShow tracks a show on the request's watchlist.
func (m *Manager) AddShow(ctx context.Context, tmdbID int32) (watchlist.Show, error) {
	draft, err := m.PrepareShow(ctx, tmdbID)
	if err != nil {
		return watchlist.Show{}, err
	}

	return m.store(ctx).Add(ctx, draft)
}

// RemoveShow drops a watchlist entry.
func (m *Manager) RemoveShow(ctx context.Context, id string) error {
	return m.store(ctx).Remove(ctx, id)
}

// ToggleWatched sets the watched flag on a watchlist entry. The backing
// store is written first; on failure nothing changes and callers keep
// their previous state.
func (m *Manager) ToggleWatched(ctx context.Context, id string, watched bool) (watchlist.Show, error) {
	return m.store(ctx).SetWatched(ctx, id, watched)
}

// ListResponse is a watchlist shaped for display.
type ListResponse struct {
	Shows  []watchlist.Show     `json:"shows"`
	Counts watchlist.Counts     `json:"counts"`
	Filter watchlist.FilterType `json:"filter"`
	Sort   watchlist.SortType   `json:"sort"`
}

// ListShows returns the request's watchlist filtered and sorted. Counts
// always cover the whole list. An empty sort falls back to the
// persisted preference.
func (m *Manager) ListShows(ctx context.Context, filter watchlist.FilterType, order watchlist.SortType) (ListResponse, error) {
	shows, err := m.store(ctx).List(ctx)
	if err != nil {
		return ListResponse{}, err
	}

	if order == "" {
		order = watchlist.LoadSortPreference(m.localKV)
	} else if err := watchlist.SaveSortPreference(m.localKV, order); err != nil {
		return ListResponse{}, err
	}

	counts := watchlist.CountShows(shows)
	shows = watchlist.Filter(shows, filter)
	shows = watchlist.Sort(shows, order)

	return ListResponse{
		Shows:  shows,
		Counts: counts,
		Filter: filter,
		Sort:   order,
	}, nil
}
