package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
)

func (h *Handler) handleListTaxis(w http.ResponseWriter, r *http.Request) {
	taxis, err := h.store.GetAllTaxis(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, taxis)
}

// handleGetTaxi returns the taxi with its driver resolved inline.
func (h *Handler) handleGetTaxi(w http.ResponseWriter, r *http.Request) {
	taxi, err := h.store.GetTaxiWithDriver(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "Taxi not found")
		return
	}
	h.respondJSON(w, http.StatusOK, taxi)
}

func (h *Handler) handleCreateTaxi(w http.ResponseWriter, r *http.Request) {
	var in fleet.InsertTaxi
	if err := h.decodeBody(w, r, &in); err != nil {
		return
	}
	taxi, err := h.store.CreateTaxi(r.Context(), in)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.log.Info(logger.Entry{
		Action:  "taxi_created",
		Message: "taxi added to fleet",
		TaxiID:  taxi.ID,
	})
	h.respondJSON(w, http.StatusCreated, taxi)
}

func (h *Handler) handleUpdateTaxi(w http.ResponseWriter, r *http.Request) {
	var patch fleet.TaxiPatch
	if err := h.decodeBody(w, r, &patch); err != nil {
		return
	}
	taxi, err := h.store.UpdateTaxi(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		h.respondDomainError(w, err, "Taxi not found")
		return
	}
	h.respondJSON(w, http.StatusOK, taxi)
}

func (h *Handler) handleDeleteTaxi(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteTaxi(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "Taxi not found")
		return
	}
	h.respondMessage(w, http.StatusOK, "Taxi deleted successfully")
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Location  *string  `json:"location"`
}

// handleUpdateTaxiLocation narrows the patch surface to position fields so
// tracker clients cannot touch anything else.
func (h *Handler) handleUpdateTaxiLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		return
	}
	taxi, err := h.store.UpdateTaxi(r.Context(), r.PathValue("id"), fleet.TaxiPatch{
		CurrentLatitude:  req.Latitude,
		CurrentLongitude: req.Longitude,
		CurrentLocation:  req.Location,
	})
	if err != nil {
		h.respondDomainError(w, err, "Taxi not found")
		return
	}
	h.respondJSON(w, http.StatusOK, taxi)
}
