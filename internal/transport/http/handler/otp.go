package handler

import (
	"encoding/json"
	"net/http"

	"github.com/muslimtime-api/internal/application/verification"
	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/infrastructure/mail"
	"github.com/muslimtime-api/internal/pkg/validate"
)

// OTPHandler handles direct verification-code endpoints.
type OTPHandler struct {
	mailer mail.Sender
	flags  verification.Service
}

func NewOTPHandler(mailer mail.Sender, flags verification.Service) *OTPHandler {
	return &OTPHandler{mailer: mailer, flags: flags}
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Send delivers an already-generated code to the email address.
func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and code are required")
		return
	}
	if err := h.mailer.SendOTP(r.Context(), req.Email, req.Code); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true})
}

type markVerifiedRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MarkEmailVerified records a verification flag for the email.
func (h *OTPHandler) MarkEmailVerified(w http.ResponseWriter, r *http.Request) {
	var req markVerifiedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.flags.MarkVerified(r.Context(), req.Email, domain.VerificationMethodOTP); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SuccessEnvelope{Success: true})
}
