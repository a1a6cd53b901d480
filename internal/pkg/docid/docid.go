// Package docid derives storage-safe document ids from email addresses.
// The sanitization rule must stay byte-compatible with already stored data:
// every character outside [A-Za-z0-9] becomes an underscore.
package docid

import "regexp"

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

func sanitize(email string) string {
	return nonAlnum.ReplaceAllString(email, "_")
}

// OTP returns the otp_codes document id for an email address.
func OTP(email string) string {
	return "otp_" + sanitize(email)
}

// Verification returns the user_verifications document id for an email address.
func Verification(email string) string {
	return "verification_" + sanitize(email)
}
