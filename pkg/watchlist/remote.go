package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/storage"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// RemoteStore is the watchlist of a signed-in user, backed by the
// database. Show rows are shared across users; the per-user state lives
// in a relation row whose id is the entry id clients see.
//
// The current list is mirrored into the local store after reads and
// writes so a lost connection still has something to show.
type RemoteStore struct {
	storage storage.Storage
	mirror  kv.Store
	userID  string
}

var _ Store = (*RemoteStore)(nil)

// NewRemoteStore creates the watchlist for the given user. The mirror
// may be nil to disable local mirroring.
func NewRemoteStore(store storage.Storage, mirror kv.Store, userID string) *RemoteStore {
	return &RemoteStore{
		storage: store,
		mirror:  mirror,
		userID:  userID,
	}
}

// List returns the user's watchlist, newest first.
func (s *RemoteStore) List(ctx context.Context) ([]Show, error) {
	relations, err := s.storage.ListRelations(ctx, s.userID)
	if err != nil {
		return nil, err
	}

	shows := make([]Show, 0, len(relations))
	for _, relation := range relations {
		shows = append(shows, fromRelation(relation))
	}

	s.mirrorShows(ctx, shows)
	return shows, nil
}

// Add tracks a show for the user. The show row is created on first use
// and refreshed on subsequent adds by other users. A duplicate is
// rejected before anything is written.
func (s *RemoteStore) Add(ctx context.Context, draft Show) (Show, error) {
	existing, err := s.storage.ListRelations(ctx, s.userID)
	if err != nil {
		return Show{}, err
	}
	for _, relation := range existing {
		if relation.Show.TmdbID == draft.TmdbID {
			return Show{}, ErrAlreadyAdded
		}
	}

	showID, err := s.storage.UpsertShow(ctx, ToModel(draft))
	if err != nil {
		return Show{}, err
	}

	relationID, err := s.storage.CreateRelation(ctx, model.UserShow{
		UserID: s.userID,
		ShowID: int32(showID),
	})
	if err != nil {
		// backstop for a concurrent add of the same show
		if errors.Is(err, storage.ErrAlreadyExists) {
			return Show{}, ErrAlreadyAdded
		}
		return Show{}, err
	}

	draft.ID = relationID
	draft.Status = StatusFor(draft.ReleasedEpisodes, draft.TotalEpisodes)
	s.refreshMirror(ctx)
	return draft, nil
}

// Remove deletes an entry by id.
func (s *RemoteStore) Remove(ctx context.Context, id string) error {
	err := s.storage.DeleteRelation(ctx, id, s.userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.refreshMirror(ctx)
	return nil
}

// SetWatched flips the watched flag on an entry.
func (s *RemoteStore) SetWatched(ctx context.Context, id string, watched bool) (Show, error) {
	err := s.storage.SetRelationWatched(ctx, id, s.userID, watched)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Show{}, ErrNotFound
		}
		return Show{}, err
	}

	relation, err := s.storage.GetRelation(ctx, id, s.userID)
	if err != nil {
		return Show{}, err
	}

	s.refreshMirror(ctx)
	return fromRelation(relation), nil
}

// Clear removes every entry for the user.
func (s *RemoteStore) Clear(ctx context.Context) error {
	relations, err := s.storage.ListRelations(ctx, s.userID)
	if err != nil {
		return err
	}

	for _, relation := range relations {
		if err := s.storage.DeleteRelation(ctx, relation.ID, s.userID); err != nil {
			return err
		}
	}

	s.refreshMirror(ctx)
	return nil
}

// refreshMirror rewrites the local mirror from the database. Mirror
// failures are logged, never surfaced.
func (s *RemoteStore) refreshMirror(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	relations, err := s.storage.ListRelations(ctx, s.userID)
	if err != nil {
		logger.FromCtx(ctx).Debug("failed to refresh watchlist mirror", zap.Error(err))
		return
	}

	shows := make([]Show, 0, len(relations))
	for _, relation := range relations {
		shows = append(shows, fromRelation(relation))
	}
	s.mirrorShows(ctx, shows)
}

func (s *RemoteStore) mirrorShows(ctx context.Context, shows []Show) {
	if s.mirror == nil {
		return
	}

	b, err := json.Marshal(shows)
	if err == nil {
		err = s.mirror.Set(showsKey, string(b))
	}
	if err != nil {
		logger.FromCtx(ctx).Debug("failed to write watchlist mirror", zap.Error(err))
	}
}

func fromRelation(relation *storage.Relation) Show {
	show := Show{
		ID:               relation.ID,
		TmdbID:           relation.Show.TmdbID,
		Title:            relation.Show.Title,
		SeasonNumber:     relation.Show.SeasonNumber,
		TotalEpisodes:    relation.Show.TotalEpisodes,
		ReleasedEpisodes: relation.Show.ReleasedEpisodes,
		Watched:          relation.Watched,
	}

	if relation.Show.PosterURL != nil {
		show.PosterURL = *relation.Show.PosterURL
	}
	if relation.Show.Genres != nil {
		show.Genre = *relation.Show.Genres
	}
	if relation.Show.Overview != nil {
		show.Overview = *relation.Show.Overview
	}

	show.Status = StatusFor(show.ReleasedEpisodes, show.TotalEpisodes)
	return show
}

// ToModel maps a show to its database row. The refresh timestamp is
// stamped now since the draft carries freshly fetched data.
func ToModel(draft Show) model.Show {
	now := time.Now().UTC()
	show := model.Show{
		TmdbID:           draft.TmdbID,
		Title:            draft.Title,
		SeasonNumber:     draft.SeasonNumber,
		TotalEpisodes:    draft.TotalEpisodes,
		ReleasedEpisodes: draft.ReleasedEpisodes,
		InProduction:     draft.InProduction,
		RefreshedAt:      &now,
	}

	if draft.AirStatus != "" {
		show.AirStatus = &draft.AirStatus
	}
	if draft.LastAirDate != "" {
		show.LastAirDate = &draft.LastAirDate
	}

	if draft.PosterURL != "" {
		show.PosterURL = &draft.PosterURL
	}
	if genre := strings.TrimSpace(draft.Genre); genre != "" {
		show.Genres = &genre
	}
	if draft.Overview != "" {
		show.Overview = &draft.Overview
	}

	return show
}
