package server

import (
	"net/http"
	"strings"

	"github.com/bingetonic/bingetonic/pkg/logger"
	"github.com/bingetonic/bingetonic/pkg/session"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := s.baseLogger.With(zap.String("request_path", r.URL.Path)).With(zap.String("id", uuid.New().String()))
			h.ServeHTTP(w, r.WithContext(logger.WithCtx(r.Context(), log)))
		})
	}
}

// SessionMiddleware resolves a Bearer token to an identity on the
// request context. Requests without a token run anonymously; a token
// that fails verification is rejected rather than silently downgraded.
func (s Server) SessionMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(auth, "Bearer ")
			id, err := s.manager.Authenticate(r.Context(), token)
			if err != nil {
				writeErrorResponse(w, http.StatusUnauthorized, err)
				return
			}

			h.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
		})
	}
}
