package manager

import (
	"context"
	"time"

	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/watchlist"
	"go.uber.org/zap"
)

// TriggerRefresh requests a refresh pass outside the regular schedule.
// It never blocks; a pass already queued absorbs the trigger.
func (m *Manager) TriggerRefresh() {
	select {
	case m.refreshCh <- struct{}{}:
	default:
	}
}

// RunRefresher periodically re-estimates availability for tracked shows
// whose data has gone stale. It blocks until the context is cancelled.
func (m *Manager) RunRefresher(ctx context.Context) error {
	log := logger.FromCtx(ctx)
	log.Info("starting refresher",
		zap.Duration("interval", m.refresh.Interval),
		zap.Duration("stale_age", m.refresh.StaleAge),
		zap.Int("batch_size", m.refresh.BatchSize))

	ticker := time.NewTicker(m.refresh.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("refresher context cancelled")
			return ctx.Err()
		case <-ticker.C:
			m.RefreshPass(ctx)
		case <-m.refreshCh:
			m.RefreshPass(ctx)
		}
	}
}

// RefreshPass refreshes one batch of stale shows. Each show is stamped
// even when its refresh fails so a broken show cannot monopolize the
// batch forever.
func (m *Manager) RefreshPass(ctx context.Context) {
	log := logger.FromCtx(ctx)

	cutoff := time.Now().UTC().Add(-m.refresh.StaleAge)
	stale, err := m.storage.ListStaleShows(ctx, cutoff, int64(m.refresh.BatchSize))
	if err != nil {
		log.Error("failed to list stale shows", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	refreshed, failed := 0, 0
	for _, show := range stale {
		if err := ctx.Err(); err != nil {
			return
		}

		if err := m.refreshShow(ctx, show.TmdbID); err != nil {
			failed++
			log.Warn("failed to refresh show",
				zap.String("title", show.Title),
				zap.Int32("tmdb_id", show.TmdbID),
				zap.Error(err))
			if err := m.storage.MarkShowRefreshFailed(ctx, int64(show.ID), err.Error(), time.Now().UTC()); err != nil {
				log.Error("failed to stamp refresh failure", zap.Int32("show_id", show.ID), zap.Error(err))
			}
			continue
		}
		refreshed++
	}

	log.Info("refresh pass finished", zap.Int("refreshed", refreshed), zap.Int("failed", failed))
}

func (m *Manager) refreshShow(ctx context.Context, tmdbID int32) error {
	draft, err := m.PrepareShow(ctx, tmdbID)
	if err != nil {
		return err
	}

	// upserting by catalog id refreshes the shared row in place
	_, err = m.storage.UpsertShow(ctx, watchlist.ToModel(draft))
	return err
}
