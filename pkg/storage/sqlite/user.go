package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/bingetonic/bingetonic/pkg/storage"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

// CreateUser stores a new user. The email must be unique.
func (s *SQLite) CreateUser(ctx context.Context, user model.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	stmt := table.User.
		INSERT(table.User.ID, table.User.Email, table.User.PasswordHash).
		MODEL(user).
		ON_CONFLICT(table.User.Email).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", storage.ErrAlreadyExists
	}

	return user.ID, nil
}

// GetUser gets a user by id
func (s *SQLite) GetUser(ctx context.Context, id string) (*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(table.User).
		WHERE(table.User.ID.EQ(sqlite.String(id)))

	var user model.User
	err := stmt.QueryContext(ctx, s.db, &user)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail gets a user by email
func (s *SQLite) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(table.User).
		WHERE(table.User.Email.EQ(sqlite.String(email)))

	var user model.User
	err := stmt.QueryContext(ctx, s.db, &user)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
