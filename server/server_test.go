package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/bingetonic/bingetonic/config"
	"github.com/bingetonic/bingetonic/pkg/availability"
	"github.com/bingetonic/bingetonic/pkg/kv"
	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/manager"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/bingetonic/bingetonic/pkg/storage/sqlite"
	"github.com/bingetonic/bingetonic/pkg/tmdb"
	"github.com/bingetonic/bingetonic/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var today = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type testServer struct {
	srv    *httptest.Server
	tmdb   *mocks.MockClientInterface
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)

	localKV, err := kv.NewFileStore(filepath.Join(t.TempDir(), "local.json"))
	require.NoError(t, err)

	sessions, err := session.NewManager("test-secret", 24*time.Hour)
	require.NoError(t, err)

	estimator := availability.New(client, availability.WithClock(func() time.Time { return today }))

	m := manager.New(client, db, localKV, sessions, config.Refresh{}, manager.WithEstimator(estimator))

	s := New(logger.Get(), m)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, tmdb: client, client: srv.Client()}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, GenericResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var generic GenericResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&generic))
	return res, generic
}

func (ts *testServer) expectSeries(id int32, name string, airDates ...string) {
	episodes := make([]tmdb.Episode, len(airDates))
	for i, date := range airDates {
		episodes[i] = tmdb.Episode{EpisodeNumber: int32(i + 1), AirDate: date}
	}

	ts.tmdb.EXPECT().SeriesDetails(gomock.Any(), id).Return(&tmdb.SeriesDetails{
		ID:      id,
		Name:    name,
		Seasons: []tmdb.Season{{SeasonNumber: 1, EpisodeCount: int32(len(airDates))}},
	}, nil)
	ts.tmdb.EXPECT().SeasonDetails(gomock.Any(), id, int32(1)).Return(&tmdb.SeasonDetails{
		SeasonNumber: 1,
		Episodes:     episodes,
	}, nil)
}

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	res, generic := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", generic.Response)
}

func TestAuthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	res, generic := ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, generic.Error)

	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, generic = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, generic.Error)

	res, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestShowEndpoints(t *testing.T) {
	ts := newTestServer(t)

	ts.expectSeries(1399, "Game of Thrones", day(-14), day(-7), day(7))

	res, generic := ts.do(t, http.MethodPost, "/api/v1/shows", "", AddShowRequest{TmdbID: 1399})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Nil(t, generic.Error)

	added, ok := generic.Response.(map[string]any)
	require.True(t, ok)
	id := added["id"].(string)
	assert.Equal(t, "Game of Thrones", added["title"])
	assert.Equal(t, float64(2), added["releasedEpisodes"])

	// duplicates conflict
	ts.expectSeries(1399, "Game of Thrones", day(-14), day(-7), day(7))
	res, _ = ts.do(t, http.MethodPost, "/api/v1/shows", "", AddShowRequest{TmdbID: 1399})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, generic = ts.do(t, http.MethodGet, "/api/v1/shows?filter=waiting", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list, ok := generic.Response.(map[string]any)
	require.True(t, ok)
	assert.Len(t, list["shows"], 1)

	res, _ = ts.do(t, http.MethodGet, "/api/v1/shows?filter=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, generic = ts.do(t, http.MethodPut, fmt.Sprintf("/api/v1/shows/%s/watched", id), "", SetWatchedRequest{Watched: true})
	require.Equal(t, http.StatusOK, res.StatusCode)
	updated := generic.Response.(map[string]any)
	assert.Equal(t, true, updated["watched"])

	res, _ = ts.do(t, http.MethodDelete, "/api/v1/shows/"+id, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.do(t, http.MethodDelete, "/api/v1/shows/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSessionMiddleware(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.do(t, http.MethodGet, "/api/v1/shows", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// a well-signed token for an account that does not exist
	sessions, err := session.NewManager("test-secret", 24*time.Hour)
	require.NoError(t, err)
	ghost, err := sessions.IssueToken("ghost", "ghost@example.com")
	require.NoError(t, err)
	res, _ = ts.do(t, http.MethodGet, "/api/v1/shows", ghost, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	_, generic := ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	})
	sess := generic.Response.(map[string]any)
	token := sess["token"].(string)

	// a signed-in add lands on the account list
	ts.expectSeries(95396, "Severance", day(-7))
	res, _ = ts.do(t, http.MethodPost, "/api/v1/shows", token, AddShowRequest{TmdbID: 95396})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, generic = ts.do(t, http.MethodGet, "/api/v1/shows", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	list := generic.Response.(map[string]any)
	assert.Len(t, list["shows"], 1)
}

func TestPendingEndpoints(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.do(t, http.MethodPost, "/api/v1/pending", "", PendingRequest{
		Action: session.PendingAction{Kind: session.ActionAddShow, TmdbID: 1399},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.do(t, http.MethodPost, "/api/v1/pending", "", PendingRequest{
		ClientID: "client-1",
		Action:   session.PendingAction{Kind: session.ActionAddShow, TmdbID: 1399},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// resuming anonymously is rejected
	res, _ = ts.do(t, http.MethodPost, "/api/v1/pending/resume", "", PendingRequest{ClientID: "client-1"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	_, generic := ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", manager.Credentials{
		Email:    "binger@example.com",
		Password: "hunter2hunter2",
	})
	token := generic.Response.(map[string]any)["token"].(string)

	ts.expectSeries(1399, "Game of Thrones", day(-14))
	res, generic = ts.do(t, http.MethodPost, "/api/v1/pending/resume", token, PendingRequest{ClientID: "client-1"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	show := generic.Response.(map[string]any)
	assert.Equal(t, "Game of Thrones", show["title"])

	// a second resume finds nothing
	res, generic = ts.do(t, http.MethodPost, "/api/v1/pending/resume", token, PendingRequest{ClientID: "client-1"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Nil(t, generic.Response)
}

func TestTriggerRefresh(t *testing.T) {
	ts := newTestServer(t)

	res, _ := ts.do(t, http.MethodPost, "/api/v1/refresh", "", nil)
	assert.Equal(t, http.StatusAccepted, res.StatusCode)
}
