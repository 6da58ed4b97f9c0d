// Package watchlist tracks the shows a user follows. It has two
// backends with the same surface: a file-backed list for anonymous use
// and a database-backed list for signed-in users.
package watchlist

import (
	"context"
	"errors"
)

var ErrAlreadyAdded = errors.New("show is already on the watchlist")
var ErrNotFound = errors.New("show is not on the watchlist")

// Status says whether a show's tracked season has fully aired.
type Status string

const (
	StatusComplete Status = "complete"
	StatusWaiting  Status = "waiting"
)

// StatusFor derives a show's status from its episode counts.
func StatusFor(released, total int32) Status {
	if released >= total {
		return StatusComplete
	}
	return StatusWaiting
}

// Complete reports whether the tracked season has fully aired. The
// episode counts are authoritative; a persisted status string can lag
// behind a refresh.
func (s Show) Complete() bool {
	return s.Status == StatusComplete || s.ReleasedEpisodes >= s.TotalEpisodes
}

// Show is a tracked show as presented to clients. ID identifies the
// watchlist entry, not the show itself; TmdbID identifies the show.
type Show struct {
	ID               string `json:"id"`
	TmdbID           int32  `json:"tmdbId"`
	Title            string `json:"title"`
	PosterURL        string `json:"posterUrl"`
	Genre            string `json:"genre,omitempty"`
	Overview         string `json:"overview,omitempty"`
	SeasonNumber     int32  `json:"seasonNumber"`
	TotalEpisodes    int32  `json:"totalEpisodes"`
	ReleasedEpisodes int32  `json:"releasedEpisodes"`
	Status           Status `json:"status"`
	Watched          bool   `json:"watched"`
	Estimated        bool   `json:"estimated,omitempty"`

	// carried for the background refresher, not exposed to clients
	InProduction bool   `json:"-"`
	AirStatus    string `json:"-"`
	LastAirDate  string `json:"-"`
}

// Store is a user's watchlist. Lists are newest first; adding prepends.
// Adding a show that is already listed fails with ErrAlreadyAdded.
type Store interface {
	List(ctx context.Context) ([]Show, error)
	Add(ctx context.Context, draft Show) (Show, error)
	Remove(ctx context.Context, id string) error
	SetWatched(ctx context.Context, id string, watched bool) (Show, error)
	Clear(ctx context.Context) error
}
