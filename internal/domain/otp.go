package domain

// OTPRecord is the one-time passcode issued for an email address during
// registration. At most one live record exists per address: a new registration
// attempt overwrites any prior record wholesale.
// Stored in otp_codes under otp_<sanitized email>; ExpiresAt is a Unix
// timestamp that doubles as the DynamoDB TTL attribute.
type OTPRecord struct {
	OTPID     string `json:"-" dynamodbav:"otp_id"`
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // Unix seconds
	Attempts  int    `json:"attempts" dynamodbav:"attempts"`
	Verified  bool   `json:"verified" dynamodbav:"verified"`
}
