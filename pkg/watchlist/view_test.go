package watchlist

import (
	"path/filepath"
	"testing"

	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewShows() []Show {
	return []Show{
		{Title: "severance", TotalEpisodes: 10, ReleasedEpisodes: 4, Status: StatusWaiting},
		{Title: "Andor", TotalEpisodes: 12, ReleasedEpisodes: 12, Status: StatusComplete},
		{Title: "The Bear", TotalEpisodes: 10, ReleasedEpisodes: 10, Status: StatusComplete},
		{Title: "Fallout", TotalEpisodes: 8, ReleasedEpisodes: 6, Status: StatusWaiting},
	}
}

func titles(shows []Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Title
	}
	return out
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("waiting")
	require.NoError(t, err)
	assert.Equal(t, FilterWaiting, f)

	_, err = ParseFilter("bogus")
	assert.Error(t, err)
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("")
	require.NoError(t, err)
	assert.Equal(t, SortDateAdded, s)

	s, err = ParseSort("releaseDate")
	require.NoError(t, err)
	assert.Equal(t, SortReleaseDate, s)

	_, err = ParseSort("bogus")
	assert.Error(t, err)
}

func TestCountShows(t *testing.T) {
	counts := CountShows(viewShows())
	assert.Equal(t, Counts{All: 4, Complete: 2, Waiting: 2}, counts)

	assert.Equal(t, Counts{}, CountShows(nil))
}

func TestStaleStatusStringLoses(t *testing.T) {
	// the persisted status lags; the episode counts decide
	shows := []Show{{Title: "Stale", TotalEpisodes: 8, ReleasedEpisodes: 8, Status: StatusWaiting}}

	assert.Equal(t, Counts{All: 1, Complete: 1}, CountShows(shows))
	assert.Equal(t, []string{"Stale"}, titles(Filter(shows, FilterComplete)))
	assert.Empty(t, Filter(shows, FilterWaiting))
}

func TestFilter(t *testing.T) {
	shows := viewShows()

	assert.Len(t, Filter(shows, FilterAll), 4)
	assert.Equal(t, []string{"Andor", "The Bear"}, titles(Filter(shows, FilterComplete)))
	assert.Equal(t, []string{"severance", "Fallout"}, titles(Filter(shows, FilterWaiting)))
}

func TestSort(t *testing.T) {
	shows := viewShows()

	t.Run("date added keeps insertion order", func(t *testing.T) {
		sorted := Sort(shows, SortDateAdded)
		assert.Equal(t, titles(shows), titles(sorted))
	})

	t.Run("alphabetical ignores case", func(t *testing.T) {
		sorted := Sort(shows, SortAlphabetical)
		assert.Equal(t, []string{"Andor", "Fallout", "severance", "The Bear"}, titles(sorted))
	})

	t.Run("status puts complete first", func(t *testing.T) {
		sorted := Sort(shows, SortStatus)
		assert.Equal(t, []string{"Andor", "The Bear", "Fallout", "severance"}, titles(sorted))
	})

	t.Run("release date puts nearly finished seasons first", func(t *testing.T) {
		sorted := Sort(shows, SortReleaseDate)
		// 0, 0, 2, 6 episodes remaining; title breaks the tie at zero
		assert.Equal(t, []string{"Andor", "The Bear", "Fallout", "severance"}, titles(sorted))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		Sort(shows, SortAlphabetical)
		assert.Equal(t, "severance", shows[0].Title)
	})
}

func TestSortPreference(t *testing.T) {
	store, err := kv.NewFileStore(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	assert.Equal(t, SortDateAdded, LoadSortPreference(store))

	require.NoError(t, SaveSortPreference(store, SortStatus))
	assert.Equal(t, SortStatus, LoadSortPreference(store))

	// garbage falls back to the default
	require.NoError(t, store.Set("sortPreference", "bogus"))
	assert.Equal(t, SortDateAdded, LoadSortPreference(store))
}
