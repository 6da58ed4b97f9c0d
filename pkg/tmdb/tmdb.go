package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/bingetonic/bingetonic/pkg/httpx"
)

//go:generate mockgen -package mocks -destination mocks/mock_tmdb_client.go github.com/bingetonic/bingetonic/pkg/tmdb ClientInterface

const imageBaseURL = "https://image.tmdb.org/t/p/"

// PlaceholderPoster is served when a show has no poster artwork.
const PlaceholderPoster = "/placeholder.svg"

// SearchResult is a single entry of a TV search response.
type SearchResult struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
}

// SearchTVResponse models the paginated TV search payload.
type SearchTVResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a named genre reference on a series.
type Genre struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Season is the season summary embedded in a series details payload.
type Season struct {
	SeasonNumber int32  `json:"season_number"`
	EpisodeCount int32  `json:"episode_count"`
	Name         string `json:"name"`
	AirDate      string `json:"air_date"`
}

// SeriesDetails is the full series payload including its season list.
type SeriesDetails struct {
	ID               int32    `json:"id"`
	Name             string   `json:"name"`
	PosterPath       string   `json:"poster_path"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	LastAirDate      string   `json:"last_air_date"`
	NumberOfEpisodes int32    `json:"number_of_episodes"`
	NumberOfSeasons  int32    `json:"number_of_seasons"`
	InProduction     bool     `json:"in_production"`
	Status           string   `json:"status"`
	Genres           []Genre  `json:"genres"`
	Seasons          []Season `json:"seasons"`
}

// Episode is a single episode of a season details payload.
type Episode struct {
	EpisodeNumber int32  `json:"episode_number"`
	Name          string `json:"name"`
	AirDate       string `json:"air_date"`
	Overview      string `json:"overview"`
}

// SeasonDetails is the per-season payload carrying episode air dates.
type SeasonDetails struct {
	ID           int32     `json:"id"`
	SeasonNumber int32     `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// ClientInterface is the catalog surface consumed by the manager.
type ClientInterface interface {
	SearchTV(ctx context.Context, query string) (*SearchTVResponse, error)
	SeriesDetails(ctx context.Context, id int32) (*SeriesDetails, error)
	SeasonDetails(ctx context.Context, id int32, seasonNumber int32) (*SeasonDetails, error)
}

// Client talks to the TMDB v3 REST API.
type Client struct {
	baseURL string
	client  httpx.HTTPClient
	reqEdit func(ctx context.Context, req *http.Request) error
}

var _ ClientInterface = (*Client)(nil)

// New creates a tmdb client for the given base url and api key
func New(baseURL, apiKey string, opts ...httpx.ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("tmdb base url is required")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpx.NewRateLimitedClient(opts...),
		reqEdit: SetRequestAPIKey(apiKey),
	}, nil
}

// SetRequestAPIKey returns a request editor attaching the bearer token
func SetRequestAPIKey(apiKey string) func(ctx context.Context, req *http.Request) error {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// SearchTV searches for tv series matching the query, most popular first
func (c *Client) SearchTV(ctx context.Context, query string) (*SearchTVResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query is empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("language", "en-US")
	params.Set("page", "1")

	var response SearchTVResponse
	if err := c.get(ctx, "/3/search/tv", params, &response); err != nil {
		return nil, err
	}

	// upstream mostly orders by popularity already, but not reliably
	sort.SliceStable(response.Results, func(i, j int) bool {
		return response.Results[i].Popularity > response.Results[j].Popularity
	})

	return &response, nil
}

// SeriesDetails fetches the series payload including its season list
func (c *Client) SeriesDetails(ctx context.Context, id int32) (*SeriesDetails, error) {
	if id <= 0 {
		return nil, errors.New("series id must be positive")
	}

	params := url.Values{}
	params.Set("language", "en-US")

	var details SeriesDetails
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d", id), params, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// SeasonDetails fetches per-episode air dates for one season of a series
func (c *Client) SeasonDetails(ctx context.Context, id int32, seasonNumber int32) (*SeasonDetails, error) {
	if id <= 0 {
		return nil, errors.New("series id must be positive")
	}

	params := url.Values{}
	params.Set("language", "en-US")

	var details SeasonDetails
	if err := c.get(ctx, fmt.Sprintf("/3/tv/%d/season/%d", id, seasonNumber), params, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to parse tmdb url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if err := c.reqEdit(ctx, req); err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb returned status %d for %s", res.StatusCode, path)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return nil
}

// PosterURL maps a poster path to the image CDN. A missing path falls back
// to the placeholder artwork.
func PosterURL(path string) string {
	if path == "" {
		return PlaceholderPoster
	}
	return imageBaseURL + "w500" + path
}
