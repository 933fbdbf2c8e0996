package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
)

const maxBodySize = 1 << 20 // 1MB

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error(logger.Entry{
			Action:  "encode_response_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// respondDomainError maps storage/auth failures onto the error taxonomy:
// 400 validation (with field list), 401 auth, 404 not found, 500 the rest.
func (h *Handler) respondDomainError(w http.ResponseWriter, err error, notFoundMessage string) {
	var ve *fleet.ValidationError
	switch {
	case errors.As(err, &ve):
		h.respondJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Invalid request data",
			"errors":  ve.Fields,
		})
	case errors.Is(err, fleet.ErrNotFound):
		h.respondMessage(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, fleet.ErrInvalidCredentials):
		h.respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, fleet.ErrNotAuthenticated):
		h.respondMessage(w, http.StatusUnauthorized, "Authentication required")
	default:
		h.log.Error(logger.Entry{
			Action:  "request_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
		h.respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody parses a JSON body into dst, rejecting unknown fields and
// bodies over 1MB.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			h.respondMessage(w, http.StatusBadRequest, "empty request body")
			return err
		}
		h.respondMessage(w, http.StatusBadRequest, "invalid request format")
		return err
	}
	return nil
}
