package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

func (h *Handler) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.store.GetAllDrivers(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, drivers)
}

func (h *Handler) handleGetDriver(w http.ResponseWriter, r *http.Request) {
	driver, err := h.store.GetDriver(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "Driver not found")
		return
	}
	h.respondJSON(w, http.StatusOK, driver)
}

func (h *Handler) handleGetDriverByTaxi(w http.ResponseWriter, r *http.Request) {
	driver, err := h.store.GetDriverByTaxiID(r.Context(), r.PathValue("taxiId"))
	if err != nil {
		h.respondDomainError(w, err, "Driver not found for this taxi")
		return
	}
	h.respondJSON(w, http.StatusOK, driver)
}

func (h *Handler) handleCreateDriver(w http.ResponseWriter, r *http.Request) {
	var in fleet.InsertDriver
	if err := h.decodeBody(w, r, &in); err != nil {
		return
	}
	driver, err := h.store.CreateDriver(r.Context(), in)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusCreated, driver)
}

func (h *Handler) handleUpdateDriver(w http.ResponseWriter, r *http.Request) {
	var patch fleet.DriverPatch
	if err := h.decodeBody(w, r, &patch); err != nil {
		return
	}
	driver, err := h.store.UpdateDriver(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.respondDomainError(w, err, "Driver not found")
		return
	}
	h.respondJSON(w, http.StatusOK, driver)
}

func (h *Handler) handleDeleteDriver(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteDriver(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "Driver not found")
		return
	}
	h.respondMessage(w, http.StatusOK, "Driver deleted successfully")
}
