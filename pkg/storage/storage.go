package storage

import (
	"context"
	"errors"
	"time"

	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrAlreadyExists = errors.New("already exists in storage")

// WatchStatus is the lifecycle of a tracked show for a user.
type WatchStatus string

const (
	WatchStatusWatching  WatchStatus = "watching"
	WatchStatusCompleted WatchStatus = "completed"
)

// Relation is a user's entry for a show, joined with the shared show row.
type Relation struct {
	model.UserShow
	Show model.Show
}

type Storage interface {
	UserStorage
	ShowStorage
	RelationStorage
}

type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (string, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// ShowStorage manages the shared show rows. A show row is keyed by its
// catalog id and shared between every user tracking it.
type ShowStorage interface {
	UpsertShow(ctx context.Context, show model.Show) (int64, error)
	GetShow(ctx context.Context, id int64) (*model.Show, error)
	GetShowByTmdbID(ctx context.Context, tmdbID int64) (*model.Show, error)
	ListStaleShows(ctx context.Context, cutoff time.Time, limit int64) ([]*model.Show, error)
	MarkShowRefreshFailed(ctx context.Context, id int64, message string, refreshedAt time.Time) error
}

type RelationStorage interface {
	CreateRelation(ctx context.Context, relation model.UserShow) (string, error)
	GetRelation(ctx context.Context, id, userID string) (*Relation, error)
	ListRelations(ctx context.Context, userID string) ([]*Relation, error)
	DeleteRelation(ctx context.Context, id, userID string) error
	SetRelationWatched(ctx context.Context, id, userID string, watched bool) error
}
