package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

func (h *Handler) handleListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetAllTaxiStats(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleGetStatsByTaxi(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetTaxiStatsByTaxiID(r.Context(), r.PathValue("taxiId"))
	if err != nil {
		h.respondDomainError(w, err, "Stats not found for this taxi")
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleUpdateStatsByTaxi(w http.ResponseWriter, r *http.Request) {
	var patch fleet.TaxiStatsPatch
	if err := h.decodeBody(w, r, &patch); err != nil {
		return
	}
	stats, err := h.store.UpdateTaxiStatsByTaxiID(r.Context(), r.PathValue("taxiId"), patch)
	if err != nil {
		h.respondDomainError(w, err, "Stats not found for this taxi")
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}
