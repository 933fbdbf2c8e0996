package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
)

func (h *Handler) handleListRecordings(w http.ResponseWriter, r *http.Request) {
	recordings, err := h.store.GetAllRecordings(r.Context())
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, recordings)
}

func (h *Handler) handleListRecordingsByTaxi(w http.ResponseWriter, r *http.Request) {
	recordings, err := h.store.GetRecordingsByTaxiID(r.Context(), r.PathValue("taxiId"))
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, recordings)
}

func (h *Handler) handleGetRecording(w http.ResponseWriter, r *http.Request) {
	recording, err := h.store.GetRecording(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "Recording not found")
		return
	}
	h.respondJSON(w, http.StatusOK, recording)
}

func (h *Handler) handleCreateRecording(w http.ResponseWriter, r *http.Request) {
	var in fleet.InsertRecording
	if err := h.decodeBody(w, r, &in); err != nil {
		return
	}
	recording, err := h.store.CreateRecording(r.Context(), in)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.log.Info(logger.Entry{
		Action:  "recording_registered",
		Message: "recording metadata stored",
		TaxiID:  recording.TaxiID,
	})
	h.respondJSON(w, http.StatusCreated, recording)
}

func (h *Handler) handleDeleteRecording(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteRecording(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	if !deleted {
		h.respondMessage(w, http.StatusNotFound, "Recording not found")
		return
	}
	h.respondMessage(w, http.StatusOK, "Recording deleted successfully")
}
