package watchlist

import (
	"fmt"
	"sort"

	"github.com/bingetonic/bingetonic/pkg/kv"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortKey is where the preferred sort order lives in the local store.
const sortKey = "sortPreference"

// FilterType narrows the list by availability status.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterComplete FilterType = "complete"
	FilterWaiting  FilterType = "waiting"
)

// SortType orders the list.
type SortType string

const (
	// SortDateAdded keeps insertion order, newest first.
	SortDateAdded    SortType = "dateAdded"
	SortAlphabetical SortType = "alphabetical"
	SortStatus       SortType = "status"
	// SortReleaseDate puts seasons closest to finishing first.
	SortReleaseDate SortType = "releaseDate"
)

// ParseFilter validates a filter name. Empty means all.
func ParseFilter(s string) (FilterType, error) {
	switch FilterType(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterComplete, FilterWaiting:
		return FilterType(s), nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// ParseSort validates a sort name. Empty means date added.
func ParseSort(s string) (SortType, error) {
	switch SortType(s) {
	case "":
		return SortDateAdded, nil
	case SortDateAdded, SortAlphabetical, SortStatus, SortReleaseDate:
		return SortType(s), nil
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// Counts are the per-status totals for the whole list, independent of
// the active filter.
type Counts struct {
	All      int `json:"all"`
	Complete int `json:"complete"`
	Waiting  int `json:"waiting"`
}

// CountShows tallies the list by status.
func CountShows(shows []Show) Counts {
	counts := Counts{All: len(shows)}
	for _, show := range shows {
		if show.Complete() {
			counts.Complete++
		} else {
			counts.Waiting++
		}
	}
	return counts
}

// Filter returns the shows matching the filter.
func Filter(shows []Show, filter FilterType) []Show {
	if filter == FilterAll || filter == "" {
		return shows
	}

	filtered := make([]Show, 0, len(shows))
	for _, show := range shows {
		switch filter {
		case FilterComplete:
			if show.Complete() {
				filtered = append(filtered, show)
			}
		case FilterWaiting:
			if !show.Complete() {
				filtered = append(filtered, show)
			}
		}
	}
	return filtered
}

// Sort returns a sorted copy of the list. Ties break by title so the
// order is stable across refreshes.
func Sort(shows []Show, order SortType) []Show {
	sorted := make([]Show, len(shows))
	copy(sorted, shows)

	if order == SortDateAdded || order == "" {
		// lists are already newest first
		return sorted
	}

	titles := collate.New(language.English, collate.IgnoreCase)
	byTitle := func(a, b Show) int {
		return titles.CompareString(a.Title, b.Title)
	}

	switch order {
	case SortAlphabetical:
		sort.SliceStable(sorted, func(i, j int) bool {
			return byTitle(sorted[i], sorted[j]) < 0
		})
	case SortStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if a.Complete() != b.Complete() {
				return a.Complete()
			}
			return byTitle(a, b) < 0
		})
	case SortReleaseDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			remainingA := a.TotalEpisodes - a.ReleasedEpisodes
			remainingB := b.TotalEpisodes - b.ReleasedEpisodes
			if remainingA != remainingB {
				return remainingA < remainingB
			}
			return byTitle(a, b) < 0
		})
	}

	return sorted
}

// SaveSortPreference persists the preferred sort order.
func SaveSortPreference(store kv.Store, order SortType) error {
	return store.Set(sortKey, string(order))
}

// LoadSortPreference returns the persisted sort order, defaulting to
// date added.
func LoadSortPreference(store kv.Store) SortType {
	raw, ok := store.Get(sortKey)
	if !ok {
		return SortDateAdded
	}

	order, err := ParseSort(raw)
	if err != nil {
		return SortDateAdded
	}
	return order
}
