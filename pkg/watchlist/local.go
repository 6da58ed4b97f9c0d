package watchlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/google/uuid"
)

// showsKey is where the anonymous watchlist lives in the local store.
const showsKey = "shows"

// LocalStore is the anonymous watchlist, persisted in the local
// key-value store. No account is needed to use it.
type LocalStore struct {
	kv kv.Store
	mu sync.Mutex
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates a watchlist backed by the given local store.
func NewLocalStore(store kv.Store) *LocalStore {
	return &LocalStore{kv: store}
}

// List returns the watchlist, newest first.
func (s *LocalStore) List(ctx context.Context) ([]Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add prepends a show to the watchlist.
func (s *LocalStore) Add(ctx context.Context, draft Show) (Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shows, err := s.load()
	if err != nil {
		return Show{}, err
	}

	for _, existing := range shows {
		if existing.TmdbID == draft.TmdbID {
			return Show{}, ErrAlreadyAdded
		}
	}

	draft.ID = uuid.NewString()
	draft.Status = StatusFor(draft.ReleasedEpisodes, draft.TotalEpisodes)

	shows = append([]Show{draft}, shows...)
	if err := s.save(shows); err != nil {
		return Show{}, err
	}

	return draft, nil
}

// Remove deletes an entry by id.
func (s *LocalStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shows, err := s.load()
	if err != nil {
		return err
	}

	for i, show := range shows {
		if show.ID == id {
			shows = append(shows[:i], shows[i+1:]...)
			return s.save(shows)
		}
	}

	return ErrNotFound
}

// SetWatched flips the watched flag on an entry.
func (s *LocalStore) SetWatched(ctx context.Context, id string, watched bool) (Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shows, err := s.load()
	if err != nil {
		return Show{}, err
	}

	for i := range shows {
		if shows[i].ID == id {
			shows[i].Watched = watched
			if err := s.save(shows); err != nil {
				return Show{}, err
			}
			return shows[i], nil
		}
	}

	return Show{}, ErrNotFound
}

// Clear empties the watchlist, used after entries migrate to an
// account.
func (s *LocalStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Remove(showsKey)
}

func (s *LocalStore) load() ([]Show, error) {
	raw, ok := s.kv.Get(showsKey)
	if !ok {
		return []Show{}, nil
	}

	var shows []Show
	if err := json.Unmarshal([]byte(raw), &shows); err != nil {
		return nil, fmt.Errorf("failed to parse local watchlist: %w", err)
	}

	return shows, nil
}

func (s *LocalStore) save(shows []Show) error {
	b, err := json.Marshal(shows)
	if err != nil {
		return fmt.Errorf("failed to encode local watchlist: %w", err)
	}

	return s.kv.Set(showsKey, string(b))
}
