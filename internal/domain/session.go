package domain

import "time"

type Session struct {
	SessionID        string    `json:"id" dynamodbav:"session_id"`
	UserID           string    `json:"user_id" dynamodbav:"user_id"`
	Enable           bool      `json:"enable" dynamodbav:"enable"`
	RefreshToken     string    `json:"-" dynamodbav:"refresh_token"`
	RefreshExpiresAt int64     `json:"-" dynamodbav:"refresh_expires_at"`
	CreatedAt        time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated" dynamodbav:"updated_at"`

	// Hydrated on read, never persisted. EmailVerified reflects the custom
	// verification flag store, not any attribute of the user record.
	User          *User `json:"user,omitempty" dynamodbav:"-"`
	EmailVerified bool  `json:"email_verified" dynamodbav:"-"`
}
