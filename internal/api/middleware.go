package api

import (
	"context"
	"net/http"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
)

type contextKey string

const contextKeySession contextKey = "session"

// sessionFromContext returns the session the auth gate attached, or nil on
// ungated routes.
func sessionFromContext(ctx context.Context) *session.Session {
	s, _ := ctx.Value(contextKeySession).(*session.Session)
	return s
}

// requireSession rejects with 401 before touching storage when no valid
// session cookie is present. Applied uniformly to every protected route.
func (h *Handler) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Resolve(r.Context(), r)
		if err != nil {
			h.respondMessage(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		ctx := context.WithValue(r.Context(), contextKeySession, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests emits one entry per request.
func logRequests(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info(logger.Entry{
			Action:  "http_request",
			Message: r.Method + " " + r.URL.Path,
			Additional: map[string]any{
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			},
		})
	})
}
