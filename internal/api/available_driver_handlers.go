package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

func (h *Handler) handleListAvailableDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.store.GetAllAvailableDrivers(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, drivers)
}

// handleCreateAvailableDriver backs the public registration form, so it is
// the one write endpoint that takes no session.
func (h *Handler) handleCreateAvailableDriver(w http.ResponseWriter, r *http.Request) {
	var in fleet.InsertAvailableDriver
	if err := h.decodeBody(w, r, &in); err != nil {
		return
	}
	driver, err := h.store.CreateAvailableDriver(r.Context(), in)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusCreated, driver)
}

func (h *Handler) handleDeleteAvailableDriver(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteAvailableDriver(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "Available driver not found")
		return
	}
	h.respondMessage(w, http.StatusOK, "Available driver removed successfully")
}
