package domain

import "time"

// Provenance of a verification flag. Informational only.
const (
	VerificationMethodOTP       = "otp"
	VerificationMethodEmailLink = "email_link"
)

// VerificationFlag is the durable "this email completed verification" fact,
// independent of any OTPRecord's lifecycle. Once written with
// IsEmailVerified=true it is never unset; absence of a flag is not proof of
// non-verification (legacy accounts predate this subsystem).
// Stored in user_verifications under verification_<sanitized email>.
type VerificationFlag struct {
	VerificationID     string    `json:"-" dynamodbav:"verification_id"`
	Email              string    `json:"email" dynamodbav:"email"`
	IsEmailVerified    bool      `json:"is_email_verified" dynamodbav:"is_email_verified"`
	VerifiedAt         time.Time `json:"verified_at" dynamodbav:"verified_at"`
	VerificationMethod string    `json:"verification_method" dynamodbav:"verification_method"`
}
