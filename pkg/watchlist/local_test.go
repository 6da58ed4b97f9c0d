package watchlist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localStore(t *testing.T) (*LocalStore, string) {
	path := filepath.Join(t.TempDir(), "local.json")
	store, err := kv.NewFileStore(path)
	require.NoError(t, err)
	return NewLocalStore(store), path
}

func TestLocalAdd(t *testing.T) {
	ctx := context.Background()
	store, _ := localStore(t)

	added, err := store.Add(ctx, Show{
		TmdbID:           1399,
		Title:            "Game of Thrones",
		TotalEpisodes:    10,
		ReleasedEpisodes: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, StatusComplete, added.Status)

	// same show again is rejected
	_, err = store.Add(ctx, Show{TmdbID: 1399, Title: "Game of Thrones"})
	assert.ErrorIs(t, err, ErrAlreadyAdded)

	shows, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 1)
}

func TestLocalOrdering(t *testing.T) {
	ctx := context.Background()
	store, _ := localStore(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, Show{TmdbID: int32(len(title)), Title: title})
		require.NoError(t, err)
	}

	shows, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 3)
	// newest first
	assert.Equal(t, "third", shows[0].Title)
	assert.Equal(t, "first", shows[2].Title)
}

func TestLocalSetWatched(t *testing.T) {
	ctx := context.Background()
	store, _ := localStore(t)

	added, err := store.Add(ctx, Show{TmdbID: 1399, Title: "Game of Thrones"})
	require.NoError(t, err)

	updated, err := store.SetWatched(ctx, added.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Watched)

	shows, err := store.List(ctx)
	require.NoError(t, err)
	assert.True(t, shows[0].Watched)

	_, err = store.SetWatched(ctx, "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := localStore(t)

	added, err := store.Add(ctx, Show{TmdbID: 1399, Title: "Game of Thrones"})
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, added.ID))
	assert.ErrorIs(t, store.Remove(ctx, added.ID), ErrNotFound)

	shows, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestLocalPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "local.json")

	fileStore, err := kv.NewFileStore(path)
	require.NoError(t, err)
	store := NewLocalStore(fileStore)

	_, err = store.Add(ctx, Show{TmdbID: 1399, Title: "Game of Thrones"})
	require.NoError(t, err)

	// a fresh store over the same file sees the entry
	reopened, err := kv.NewFileStore(path)
	require.NoError(t, err)

	shows, err := NewLocalStore(reopened).List(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Game of Thrones", shows[0].Title)
}

func TestLocalClear(t *testing.T) {
	ctx := context.Background()
	store, _ := localStore(t)

	_, err := store.Add(ctx, Show{TmdbID: 1399, Title: "Game of Thrones"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	shows, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, shows)
}
