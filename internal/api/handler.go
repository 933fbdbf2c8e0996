// Package api is the HTTP transport: a net/http mux over the fleet store,
// the auth service and the session manager. All responses are JSON.
package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/auth"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"
)

type Handler struct {
	store    storage.Store
	auth     *auth.Service
	sessions *session.Manager
	log      *logger.Logger
}

func NewHandler(store storage.Store, authSvc *auth.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{store: store, auth: authSvc, sessions: sessions, log: log}
}

// Routes builds the full route table. Everything under /api requires a
// session except login and the public driver registration form.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	gate := h.requireSession

	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", gate(h.handleLogout))
	mux.HandleFunc("GET /api/auth/me", gate(h.handleMe))

	mux.HandleFunc("GET /api/taxis", gate(h.handleListTaxis))
	mux.HandleFunc("POST /api/taxis", gate(h.handleCreateTaxi))
	mux.HandleFunc("GET /api/taxis/{id}", gate(h.handleGetTaxi))
	mux.HandleFunc("PATCH /api/taxis/{id}", gate(h.handleUpdateTaxi))
	mux.HandleFunc("DELETE /api/taxis/{id}", gate(h.handleDeleteTaxi))
	mux.HandleFunc("PATCH /api/taxis/{id}/location", gate(h.handleUpdateTaxiLocation))

	mux.HandleFunc("GET /api/drivers", gate(h.handleListDrivers))
	mux.HandleFunc("POST /api/drivers", gate(h.handleCreateDriver))
	mux.HandleFunc("GET /api/drivers/{id}", gate(h.handleGetDriver))
	mux.HandleFunc("PATCH /api/drivers/{id}", gate(h.handleUpdateDriver))
	mux.HandleFunc("DELETE /api/drivers/{id}", gate(h.handleDeleteDriver))
	mux.HandleFunc("GET /api/drivers/taxi/{taxiId}", gate(h.handleGetDriverByTaxi))

	mux.HandleFunc("GET /api/stats", gate(h.handleListStats))
	mux.HandleFunc("GET /api/stats/taxi/{taxiId}", gate(h.handleGetStatsByTaxi))
	mux.HandleFunc("PATCH /api/stats/taxi/{taxiId}", gate(h.handleUpdateStatsByTaxi))

	mux.HandleFunc("GET /api/recordings", gate(h.handleListRecordings))
	mux.HandleFunc("POST /api/recordings", gate(h.handleCreateRecording))
	mux.HandleFunc("GET /api/recordings/{id}", gate(h.handleGetRecording))
	mux.HandleFunc("DELETE /api/recordings/{id}", gate(h.handleDeleteRecording))
	mux.HandleFunc("GET /api/recordings/taxi/{taxiId}", gate(h.handleListRecordingsByTaxi))

	mux.HandleFunc("GET /api/available-drivers", gate(h.handleListAvailableDrivers))
	mux.HandleFunc("POST /api/available-drivers", h.handleCreateAvailableDriver)
	mux.HandleFunc("DELETE /api/available-drivers/{id}", gate(h.handleDeleteAvailableDriver))

	return logRequests(h.log, mux)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
