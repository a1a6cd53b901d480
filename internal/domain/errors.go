package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Terminal outcomes of the OTP verification state machine.
// Their messages are surfaced verbatim to the user.
var (
	ErrOTPNotFound     = errors.New("verification code not found or expired")
	ErrOTPExpired      = errors.New("verification code expired, request a new one")
	ErrTooManyAttempts = errors.New("too many wrong attempts, request a new code")
	ErrCodeMismatch    = errors.New("wrong verification code")
	ErrAlreadyVerified = errors.New("email already verified")
)
