package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bingetonic/bingetonic/pkg/storage"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// UpsertShow inserts a show or, if a row for its catalog id already
// exists, refreshes that row's availability fields. The row id is
// returned either way.
func (s *SQLite) UpsertShow(ctx context.Context, show model.Show) (int64, error) {
	insertColumns := table.Show.MutableColumns.
		Except(table.Show.CreatedAt, table.Show.UpdatedAt)

	stmt := table.Show.
		INSERT(insertColumns).
		MODEL(show).
		ON_CONFLICT(table.Show.TmdbID).
		DO_UPDATE(sqlite.SET(
			table.Show.Title.SET(table.Show.EXCLUDED.Title),
			table.Show.PosterURL.SET(table.Show.EXCLUDED.PosterURL),
			table.Show.Overview.SET(table.Show.EXCLUDED.Overview),
			table.Show.Genres.SET(table.Show.EXCLUDED.Genres),
			table.Show.SeasonNumber.SET(table.Show.EXCLUDED.SeasonNumber),
			table.Show.TotalEpisodes.SET(table.Show.EXCLUDED.TotalEpisodes),
			table.Show.ReleasedEpisodes.SET(table.Show.EXCLUDED.ReleasedEpisodes),
			table.Show.InProduction.SET(table.Show.EXCLUDED.InProduction),
			table.Show.AirStatus.SET(table.Show.EXCLUDED.AirStatus),
			table.Show.LastAirDate.SET(table.Show.EXCLUDED.LastAirDate),
			table.Show.RefreshedAt.SET(table.Show.EXCLUDED.RefreshedAt),
			table.Show.LastError.SET(table.Show.EXCLUDED.LastError),
			table.Show.RetryCount.SET(table.Show.EXCLUDED.RetryCount),
			table.Show.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		)).
		RETURNING(table.Show.ID)

	var inserted model.Show
	err := stmt.QueryContext(ctx, s.db, &inserted)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert show: %w", err)
	}

	return int64(inserted.ID), nil
}

// GetShow gets a show by id
func (s *SQLite) GetShow(ctx context.Context, id int64) (*model.Show, error) {
	return s.getShow(ctx, table.Show.ID.EQ(sqlite.Int64(id)))
}

// GetShowByTmdbID gets a show by its catalog id
func (s *SQLite) GetShowByTmdbID(ctx context.Context, tmdbID int64) (*model.Show, error) {
	return s.getShow(ctx, table.Show.TmdbID.EQ(sqlite.Int64(tmdbID)))
}

func (s *SQLite) getShow(ctx context.Context, where sqlite.BoolExpression) (*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		WHERE(where)

	var show model.Show
	err := stmt.QueryContext(ctx, s.db, &show)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return &show, nil
}

// ListStaleShows lists shows whose availability has not been refreshed
// since the cutoff, oldest first. Shows never refreshed sort first.
func (s *SQLite) ListStaleShows(ctx context.Context, cutoff time.Time, limit int64) ([]*model.Show, error) {
	stmt := table.Show.
		SELECT(table.Show.AllColumns).
		FROM(table.Show).
		WHERE(
			table.Show.RefreshedAt.IS_NULL().
				OR(table.Show.RefreshedAt.LT(sqlite.TimestampExp(sqlite.String(cutoff.UTC().Format(time.DateTime))))),
		).
		ORDER_BY(table.Show.RefreshedAt.ASC()).
		LIMIT(limit)

	shows := make([]*model.Show, 0)
	err := stmt.QueryContext(ctx, s.db, &shows)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale shows: %w", err)
	}

	return shows, nil
}

// MarkShowRefreshFailed stamps a failed refresh attempt. The refresh
// timestamp still advances so one broken show cannot wedge the queue.
func (s *SQLite) MarkShowRefreshFailed(ctx context.Context, id int64, message string, refreshedAt time.Time) error {
	stmt := table.Show.
		UPDATE().
		SET(
			table.Show.RefreshedAt.SET(sqlite.TimestampExp(sqlite.String(refreshedAt.UTC().Format(time.DateTime)))),
			table.Show.LastError.SET(sqlite.String(message)),
			table.Show.RetryCount.SET(table.Show.RetryCount.ADD(sqlite.Int(1))),
			table.Show.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		).
		WHERE(table.Show.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to mark show refresh failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
