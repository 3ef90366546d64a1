package domain

import "errors"

// Validation errors
var (
	ErrInvalidRole  = errors.New("role is not in the allowed set")
	ErrInvalidPhone = errors.New("phone number is not valid")
)

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("email or phone already registered")
	ErrAlreadyActive      = errors.New("account already activated")
	ErrNotActivated       = errors.New("account not activated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP errors
var (
	ErrCodeExpired  = errors.New("verification code expired or missing")
	ErrCodeMismatch = errors.New("verification code does not match")
)

// Delivery errors
var (
	ErrNotificationFailed = errors.New("could not deliver verification code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
