package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bingetonic/bingetonic/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedShow(t *testing.T, tm *testManager, tmdbID int32, title string, refreshedAt *time.Time) int64 {
	t.Helper()
	id, err := tm.storage.UpsertShow(context.Background(), model.Show{
		TmdbID:           tmdbID,
		Title:            title,
		SeasonNumber:     1,
		TotalEpisodes:    3,
		ReleasedEpisodes: 1,
		RefreshedAt:      refreshedAt,
	})
	require.NoError(t, err)
	return id
}

func TestRefreshPass(t *testing.T) {
	ctx := context.Background()
	tm := newTestManager(t)

	staleID := seedShow(t, tm, 1399, "Stale Show", nil)

	fresh := today.Add(-time.Hour)
	seedShow(t, tm, 95396, "Fresh Show", &fresh)

	// only the stale show is fetched again
	expectSeries(tm.tmdb, 1399, "Stale Show", day(-21), day(-14), day(7))

	tm.RefreshPass(ctx)

	show, err := tm.storage.GetShow(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), show.ReleasedEpisodes)
	assert.Equal(t, int32(3), show.TotalEpisodes)
	require.NotNil(t, show.RefreshedAt)
	assert.Nil(t, show.LastError)
}

func TestRefreshPassStampsFailures(t *testing.T) {
	ctx := context.Background()
	tm := newTestManager(t)

	brokenID := seedShow(t, tm, 404, "Broken Show", nil)

	tm.tmdb.EXPECT().SeriesDetails(gomock.Any(), int32(404)).Return(nil, errors.New("tmdb returned status 500"))

	tm.RefreshPass(ctx)

	show, err := tm.storage.GetShow(ctx, brokenID)
	require.NoError(t, err)
	// the failure is stamped so the next pass moves on to other shows
	require.NotNil(t, show.RefreshedAt)
	require.NotNil(t, show.LastError)
	assert.Contains(t, *show.LastError, "500")
	assert.Equal(t, int32(1), show.RetryCount)
	// availability is untouched
	assert.Equal(t, int32(1), show.ReleasedEpisodes)
}

func TestTriggerRefreshNeverBlocks(t *testing.T) {
	tm := newTestManager(t)

	// no one is listening; both calls must return immediately
	tm.TriggerRefresh()
	tm.TriggerRefresh()
}

func TestRunRefresherStopsOnCancel(t *testing.T) {
	tm := newTestManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tm.RunRefresher(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop")
	}
}
