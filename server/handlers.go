package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/manager"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/bingetonic/bingetonic/pkg/watchlist"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SignUp creates an account and returns a session token
func (s Server) SignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds manager.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		sess, err := s.manager.SignUp(r.Context(), creds)
		if err != nil {
			if errors.Is(err, manager.ErrEmailTaken) {
				writeErrorResponse(w, http.StatusConflict, err)
				return
			}
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: sess})
	}
}

// SignIn verifies credentials and returns a session token
func (s Server) SignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds manager.Credentials
		if !decodeBody(w, r, &creds) {
			return
		}

		sess, err := s.manager.SignIn(r.Context(), creds)
		if err != nil {
			if errors.Is(err, manager.ErrBadCredentials) {
				writeErrorResponse(w, http.StatusUnauthorized, err)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: sess})
	}
}

// SearchShows searches the catalog for tv shows
func (s Server) SearchShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		query := r.URL.Query().Get("query")

		result, err := s.manager.SearchShows(r.Context(), query)
		if err != nil {
			writeErrorResponse(w, http.StatusBadGateway, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
			return
		}
	}
}

// ListShows returns the request's watchlist, filtered and sorted
func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qps := r.URL.Query()

		filter, err := watchlist.ParseFilter(qps.Get("filter"))
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		order, err := watchlist.ParseSort(qps.Get("sort"))
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if qps.Get("sort") == "" {
			// let the persisted preference win when unspecified
			order = ""
		}

		list, err := s.manager.ListShows(r.Context(), filter, order)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: list})
	}
}

// AddShowRequest identifies the catalog entry to track.
type AddShowRequest struct {
	TmdbID int32 `json:"tmdbId"`
}

// AddShow tracks a show on the request's watchlist
func (s Server) AddShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request AddShowRequest
		if !decodeBody(w, r, &request) {
			return
		}

		show, err := s.manager.AddShow(r.Context(), request.TmdbID)
		if err != nil {
			if errors.Is(err, watchlist.ErrAlreadyAdded) {
				writeErrorResponse(w, http.StatusConflict, err)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: show})
	}
}

// RemoveShow drops a watchlist entry
func (s Server) RemoveShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := s.manager.RemoveShow(r.Context(), id); err != nil {
			if errors.Is(err, watchlist.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeGenericResponse(w, http.StatusOK)
	}
}

// SetWatchedRequest carries the new watched flag.
type SetWatchedRequest struct {
	Watched bool `json:"watched"`
}

// SetWatched flips the watched flag on a watchlist entry
func (s Server) SetWatched() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var request SetWatchedRequest
		if !decodeBody(w, r, &request) {
			return
		}

		show, err := s.manager.ToggleWatched(r.Context(), id, request.Watched)
		if err != nil {
			if errors.Is(err, watchlist.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, err)
				return
			}
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: show})
	}
}

// PendingRequest names the client whose action is captured or resumed.
type PendingRequest struct {
	ClientID string                `json:"clientId"`
	Action   session.PendingAction `json:"action"`
}

// CapturePending stores the action an anonymous client attempted
func (s Server) CapturePending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request PendingRequest
		if !decodeBody(w, r, &request) {
			return
		}

		if request.ClientID == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("clientId is required"))
			return
		}

		s.manager.CapturePending(request.ClientID, request.Action)
		writeGenericResponse(w, http.StatusOK)
	}
}

// ResumePending replays a captured action after sign-in
func (s Server) ResumePending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromCtx(r.Context()); !ok {
			writeErrorResponse(w, http.StatusUnauthorized, errors.New("resume requires a signed-in session"))
			return
		}

		var request PendingRequest
		if !decodeBody(w, r, &request) {
			return
		}

		show, err := s.manager.ResumePending(r.Context(), request.ClientID)
		if err != nil {
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: show})
	}
}

// TriggerRefresh queues an availability refresh pass
func (s Server) TriggerRefresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.manager.TriggerRefresh()
		writeGenericResponse(w, http.StatusAccepted)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	log := logger.FromCtx(r.Context())
	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("invalid request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := json.Unmarshal(b, out); err != nil {
		log.Debug("invalid request body", zap.ByteString("body", b))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}
