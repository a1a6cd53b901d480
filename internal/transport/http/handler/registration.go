package handler

import (
	"encoding/json"
	"net/http"

	"github.com/muslimtime-api/internal/application/registration"
	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/pkg/validate"
)

// RegistrationHandler handles the two-step email-verified signup.
type RegistrationHandler struct {
	svc registration.Service
}

func NewRegistrationHandler(svc registration.Service) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Begin validates the signup payload and emails a verification code. No
// account exists until the code is confirmed.
func (h *RegistrationHandler) Begin(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Begin(r.Context(), req.Email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"otp_sent": true,
		"message":  "verification code sent, check your inbox",
	})
}

// Confirm checks the emailed code and creates the account.
func (h *RegistrationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req domain.ConfirmRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.Complete(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user": toSafeUser(u),
	})
}
