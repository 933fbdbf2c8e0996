package api

import (
	"net/http"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		return
	}

	ve := &fleet.ValidationError{}
	if req.Email == "" {
		ve.Add("email", "cannot be empty")
	}
	if req.Password == "" {
		ve.Add("password", "cannot be empty")
	}
	if err := ve.OrNil(); err != nil {
		h.respondDomainError(w, err, "")
		return
	}

	user, sess, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}

	h.sessions.WriteCookie(w, token, sess.ExpiresAt)
	h.respondJSON(w, http.StatusOK, map[string]any{"user": user.Public()})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if err := h.auth.Logout(r.Context(), sess.ID); err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.sessions.ClearCookie(w)
	h.respondMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	user, err := h.auth.CurrentUser(r.Context(), sess.UserID)
	if err != nil {
		h.respondDomainError(w, err, "")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"user": user.Public()})
}
