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
	"github.com/google/uuid"
)

// CreateRelation stores a user's entry for a show. A user can hold at
// most one entry per show; a duplicate returns ErrAlreadyExists.
func (s *SQLite) CreateRelation(ctx context.Context, relation model.UserShow) (string, error) {
	if relation.ID == "" {
		relation.ID = uuid.NewString()
	}
	if relation.Status == "" {
		relation.Status = string(storage.WatchStatusWatching)
	}
	if relation.CreatedAt == nil {
		now := time.Now().UTC()
		relation.CreatedAt = &now
	}

	stmt := table.UserShow.
		INSERT(table.UserShow.AllColumns.Except(table.UserShow.UpdatedAt)).
		MODEL(relation).
		ON_CONFLICT(table.UserShow.UserID, table.UserShow.ShowID).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return "", fmt.Errorf("failed to create relation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", storage.ErrAlreadyExists
	}

	return relation.ID, nil
}

// GetRelation gets a user's entry by id, joined with its show
func (s *SQLite) GetRelation(ctx context.Context, id, userID string) (*storage.Relation, error) {
	stmt := relationSelect().
		WHERE(
			table.UserShow.ID.EQ(sqlite.String(id)).
				AND(table.UserShow.UserID.EQ(sqlite.String(userID))),
		)

	var relation storage.Relation
	err := stmt.QueryContext(ctx, s.db, &relation)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get relation: %w", err)
	}

	return &relation, nil
}

// ListRelations lists a user's entries, newest first
func (s *SQLite) ListRelations(ctx context.Context, userID string) ([]*storage.Relation, error) {
	stmt := relationSelect().
		WHERE(table.UserShow.UserID.EQ(sqlite.String(userID))).
		ORDER_BY(table.UserShow.CreatedAt.DESC())

	relations := make([]*storage.Relation, 0)
	err := stmt.QueryContext(ctx, s.db, &relations)
	if err != nil {
		return nil, fmt.Errorf("failed to list relations: %w", err)
	}

	return relations, nil
}

// DeleteRelation removes a user's entry by id
func (s *SQLite) DeleteRelation(ctx context.Context, id, userID string) error {
	stmt := table.UserShow.
		DELETE().
		WHERE(
			table.UserShow.ID.EQ(sqlite.String(id)).
				AND(table.UserShow.UserID.EQ(sqlite.String(userID))),
		)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete relation: %w", err)
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

// SetRelationWatched updates the watched flag of a user's entry. The
// watch status follows the flag.
func (s *SQLite) SetRelationWatched(ctx context.Context, id, userID string, watched bool) error {
	status := storage.WatchStatusWatching
	if watched {
		status = storage.WatchStatusCompleted
	}

	stmt := table.UserShow.
		UPDATE().
		SET(
			table.UserShow.Watched.SET(sqlite.Bool(watched)),
			table.UserShow.Status.SET(sqlite.String(string(status))),
			table.UserShow.UpdatedAt.SET(sqlite.CURRENT_TIMESTAMP()),
		).
		WHERE(
			table.UserShow.ID.EQ(sqlite.String(id)).
				AND(table.UserShow.UserID.EQ(sqlite.String(userID))),
		)

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to set relation watched: %w", err)
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

func relationSelect() sqlite.SelectStatement {
	return sqlite.
		SELECT(
			table.UserShow.AllColumns,
			table.Show.AllColumns,
		).
		FROM(
			table.UserShow.
				INNER_JOIN(table.Show, table.Show.ID.EQ(table.UserShow.ShowID)),
		)
}
