// Package availability estimates how many episodes of a tracked season
// have aired so far.
//
// When per-episode air dates can be fetched the count is exact. When the
// season lookup fails the estimate degrades to a weekly-cadence heuristic,
// which is an approximation and surfaced to users as such.
package availability

import (
	"context"
	"math"
	"time"

	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/tmdb"
	"go.uber.org/zap"
)

const airDateLayout = "2006-01-02"

// statusReturning is the tmdb series status for an ongoing season.
const statusReturning = "Returning Series"

// Clock supplies the current time; replaced in tests.
type Clock func() time.Time

// Estimate is the availability of a tracked season as of "now".
type Estimate struct {
	SeasonNumber int32
	Total        int32
	Released     int32
	// Latest is the most recently aired episode, Next the next upcoming
	// one. Either may be nil, and both are nil under the heuristic.
	Latest    *tmdb.Episode
	Next      *tmdb.Episode
	Heuristic bool
}

// Complete reports whether every episode of the tracked season has aired.
func (e Estimate) Complete() bool {
	return e.Released >= e.Total
}

// Estimator computes season availability from catalog data.
type Estimator struct {
	tmdb tmdb.ClientInterface
	now  Clock
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithClock overrides the clock, used by tests to pin "today".
func WithClock(now Clock) Option {
	return func(e *Estimator) {
		e.now = now
	}
}

// New creates an Estimator backed by the given catalog client.
func New(client tmdb.ClientInterface, opts ...Option) *Estimator {
	e := &Estimator{
		tmdb: client,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ForSeries estimates availability for the tracked season of a series.
// The tracked season is the highest-numbered season in the details; a
// failed season lookup falls back to the heuristic rather than erroring.
func (e *Estimator) ForSeries(ctx context.Context, details *tmdb.SeriesDetails) Estimate {
	seasonNumber, total := TrackedSeason(details)

	season, err := e.tmdb.SeasonDetails(ctx, details.ID, seasonNumber)
	if err != nil {
		logger.FromCtx(ctx).Debug("season lookup failed, using heuristic estimate",
			zap.Int32("tmdb_id", details.ID),
			zap.Int32("season", seasonNumber),
			zap.Error(err))
		return heuristic(details, seasonNumber, total, e.now())
	}

	est := FromSeason(season, e.now())
	est.SeasonNumber = seasonNumber
	est.Total = total
	return est
}

// TrackedSeason picks the season to track: the highest season number in
// the list. An empty season list falls back to the show-level episode
// count with season 1.
func TrackedSeason(details *tmdb.SeriesDetails) (seasonNumber int32, total int32) {
	if len(details.Seasons) == 0 {
		return 1, details.NumberOfEpisodes
	}

	latest := details.Seasons[0]
	for _, s := range details.Seasons[1:] {
		if s.SeasonNumber > latest.SeasonNumber {
			latest = s
		}
	}

	return latest.SeasonNumber, latest.EpisodeCount
}

// FromSeason counts released episodes exactly from per-episode air dates.
// An episode with no air date is never assumed to have aired.
func FromSeason(season *tmdb.SeasonDetails, now time.Time) Estimate {
	est := Estimate{
		SeasonNumber: season.SeasonNumber,
		Total:        int32(len(season.Episodes)),
	}

	for i := range season.Episodes {
		ep := &season.Episodes[i]
		aired, ok := airDate(ep.AirDate)
		if !ok {
			continue
		}

		if !aired.After(now) {
			est.Released++
			if est.Latest == nil || ep.EpisodeNumber > est.Latest.EpisodeNumber {
				est.Latest = ep
			}
			continue
		}

		if est.Next == nil || ep.EpisodeNumber < est.Next.EpisodeNumber {
			est.Next = ep
		}
	}

	return est
}

// heuristic assumes the season is fully aired unless the show is still in
// production with an ongoing season, in which case it assumes a weekly
// cadence from the last known air date.
func heuristic(details *tmdb.SeriesDetails, seasonNumber, total int32, now time.Time) Estimate {
	est := Estimate{
		SeasonNumber: seasonNumber,
		Total:        total,
		Released:     total,
		Heuristic:    true,
	}

	if !details.InProduction || details.Status != statusReturning {
		return est
	}

	lastAir, ok := airDate(details.LastAirDate)
	if !ok {
		lastAir, ok = airDate(details.FirstAirDate)
	}
	if !ok {
		return est
	}

	daysSinceLastAir := now.Sub(lastAir).Hours() / 24
	weekly := int32(math.Ceil(daysSinceLastAir / 7))
	if weekly < 0 {
		weekly = 0
	}
	if weekly < total {
		est.Released = weekly
	}

	return est
}

func airDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(airDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
