package domain

import "time"

type User struct {
	UserID       string     `json:"id" dynamodbav:"user_id"`
	Email        string     `json:"email" dynamodbav:"email"`
	DisplayName  string     `json:"display_name" dynamodbav:"display_name"`
	PhotoURL     *string    `json:"photo_url" dynamodbav:"photo_url"`
	AvatarKey    string     `json:"-" dynamodbav:"avatar_key"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	Enable       bool       `json:"enable" dynamodbav:"enable"`
	CreatedAt    time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login,omitempty" dynamodbav:"last_login_at"`
}

// RegisterRequest starts a registration: no account is created until the
// emailed code is confirmed.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"display_name" validate:"required"`
}

// ConfirmRegistrationRequest finalizes a registration with the emailed code.
type ConfirmRegistrationRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"display_name" validate:"required"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
}
