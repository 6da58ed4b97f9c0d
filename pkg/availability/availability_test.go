package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bingetonic/bingetonic/pkg/tmdb"
	"github.com/bingetonic/bingetonic/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format(airDateLayout)
}

func TestFromSeason(t *testing.T) {
	t.Run("counts aired episodes exactly", func(t *testing.T) {
		season := &tmdb.SeasonDetails{
			SeasonNumber: 3,
			Episodes: []tmdb.Episode{
				{EpisodeNumber: 1, AirDate: day(-10)},
				{EpisodeNumber: 2, AirDate: day(-3)},
				{EpisodeNumber: 3, AirDate: day(4)},
			},
		}

		est := FromSeason(season, today)
		assert.Equal(t, int32(2), est.Released)
		require.NotNil(t, est.Latest)
		assert.Equal(t, int32(2), est.Latest.EpisodeNumber)
		require.NotNil(t, est.Next)
		assert.Equal(t, int32(3), est.Next.EpisodeNumber)
		assert.False(t, est.Heuristic)
	})

	t.Run("missing air date never counts as aired", func(t *testing.T) {
		season := &tmdb.SeasonDetails{
			SeasonNumber: 1,
			Episodes: []tmdb.Episode{
				{EpisodeNumber: 1, AirDate: day(-7)},
				{EpisodeNumber: 2, AirDate: ""},
				{EpisodeNumber: 3, AirDate: "not-a-date"},
			},
		}

		est := FromSeason(season, today)
		assert.Equal(t, int32(1), est.Released)
		require.NotNil(t, est.Latest)
		assert.Equal(t, int32(1), est.Latest.EpisodeNumber)
		assert.Nil(t, est.Next)
	})

	t.Run("air date today counts", func(t *testing.T) {
		season := &tmdb.SeasonDetails{
			SeasonNumber: 1,
			Episodes: []tmdb.Episode{
				{EpisodeNumber: 1, AirDate: day(0)},
			},
		}

		est := FromSeason(season, today)
		assert.Equal(t, int32(1), est.Released)
	})

	t.Run("empty season", func(t *testing.T) {
		est := FromSeason(&tmdb.SeasonDetails{SeasonNumber: 1}, today)
		assert.Equal(t, int32(0), est.Released)
		assert.Nil(t, est.Latest)
		assert.Nil(t, est.Next)
		assert.True(t, est.Complete())
	})
}

func TestTrackedSeason(t *testing.T) {
	t.Run("picks highest season number", func(t *testing.T) {
		details := &tmdb.SeriesDetails{
			NumberOfEpisodes: 40,
			Seasons: []tmdb.Season{
				{SeasonNumber: 1, EpisodeCount: 10},
				{SeasonNumber: 3, EpisodeCount: 8},
				{SeasonNumber: 2, EpisodeCount: 12},
			},
		}

		number, total := TrackedSeason(details)
		assert.Equal(t, int32(3), number)
		assert.Equal(t, int32(8), total)
	})

	t.Run("empty season list falls back to show totals", func(t *testing.T) {
		details := &tmdb.SeriesDetails{NumberOfEpisodes: 24}

		number, total := TrackedSeason(details)
		assert.Equal(t, int32(1), number)
		assert.Equal(t, int32(24), total)
	})
}

func TestHeuristic(t *testing.T) {
	t.Run("weekly cadence while in production", func(t *testing.T) {
		details := &tmdb.SeriesDetails{
			InProduction: true,
			Status:       "Returning Series",
			LastAirDate:  day(-15),
			Seasons:      []tmdb.Season{{SeasonNumber: 2, EpisodeCount: 10}},
		}

		est := heuristic(details, 2, 10, today)
		// 15 days at one episode a week rounds up to 3
		assert.Equal(t, int32(3), est.Released)
		assert.Equal(t, int32(10), est.Total)
		assert.True(t, est.Heuristic)
	})

	t.Run("assumes fully aired when not in production", func(t *testing.T) {
		details := &tmdb.SeriesDetails{
			InProduction: false,
			Status:       "Ended",
			LastAirDate:  day(-15),
		}

		est := heuristic(details, 1, 10, today)
		assert.Equal(t, int32(10), est.Released)
		assert.True(t, est.Complete())
	})

	t.Run("caps at total episodes", func(t *testing.T) {
		details := &tmdb.SeriesDetails{
			InProduction: true,
			Status:       "Returning Series",
			LastAirDate:  day(-700),
		}

		est := heuristic(details, 1, 10, today)
		assert.Equal(t, int32(10), est.Released)
	})

	t.Run("falls back to first air date", func(t *testing.T) {
		details := &tmdb.SeriesDetails{
			InProduction: true,
			Status:       "Returning Series",
			FirstAirDate: day(-8),
		}

		est := heuristic(details, 1, 10, today)
		assert.Equal(t, int32(2), est.Released)
	})
}

func TestEstimatorForSeries(t *testing.T) {
	t.Run("prefers exact air dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)

		details := &tmdb.SeriesDetails{
			ID:      42,
			Seasons: []tmdb.Season{{SeasonNumber: 2, EpisodeCount: 3}},
		}

		client.EXPECT().SeasonDetails(gomock.Any(), int32(42), int32(2)).Return(&tmdb.SeasonDetails{
			SeasonNumber: 2,
			Episodes: []tmdb.Episode{
				{EpisodeNumber: 1, AirDate: day(-10)},
				{EpisodeNumber: 2, AirDate: day(-3)},
				{EpisodeNumber: 3, AirDate: day(4)},
			},
		}, nil)

		e := New(client, WithClock(func() time.Time { return today }))
		est := e.ForSeries(context.Background(), details)

		assert.Equal(t, int32(2), est.Released)
		assert.Equal(t, int32(3), est.Total)
		assert.Equal(t, int32(2), est.SeasonNumber)
		assert.False(t, est.Heuristic)
	})

	t.Run("falls back to heuristic on lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClientInterface(ctrl)

		details := &tmdb.SeriesDetails{
			ID:           42,
			InProduction: true,
			Status:       "Returning Series",
			LastAirDate:  day(-15),
			Seasons:      []tmdb.Season{{SeasonNumber: 4, EpisodeCount: 10}},
		}

		client.EXPECT().SeasonDetails(gomock.Any(), int32(42), int32(4)).Return(nil, errors.New("tmdb returned status 500"))

		e := New(client, WithClock(func() time.Time { return today }))
		est := e.ForSeries(context.Background(), details)

		assert.Equal(t, int32(3), est.Released)
		assert.Equal(t, int32(10), est.Total)
		assert.Equal(t, int32(4), est.SeasonNumber)
		assert.True(t, est.Heuristic)
	})
}
