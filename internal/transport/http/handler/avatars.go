package handler

import (
	"net/http"

	"github.com/muslimtime-api/internal/application/avatar"
	"github.com/muslimtime-api/internal/transport/http/middleware"
)

// Multipart uploads above this size are rejected.
const maxAvatarSize = 5 << 20

// AvatarHandler handles profile picture upload and removal.
type AvatarHandler struct {
	svc avatar.Service
}

func NewAvatarHandler(svc avatar.Service) *AvatarHandler {
	return &AvatarHandler{svc: svc}
}

func (h *AvatarHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "avatar file required")
		return
	}
	defer file.Close()

	u, err := h.svc.Upload(r.Context(), claims.UserID, header.Filename, file)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": toSafeUser(u)})
}

func (h *AvatarHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := h.svc.Remove(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": toSafeUser(u)})
}
