package domain

import "time"

// Account status values. An account is created as pending and becomes
// active exactly once, after OTP verification. There is no transition back.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// User represents a registered account in the system
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	ReferralCode string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the account has completed OTP verification.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// RegisterResult represents the outcome of a registration submission.
// CodeDelivered is false when the account was created but the verification
// code could not be stored or delivered; the account still exists and the
// caller should prompt a resend.
type RegisterResult struct {
	User          *User
	CodeDelivered bool
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// PendingCode is one outstanding verification code for an email address.
// At most one live code exists per email; issuing a new one replaces it.
type PendingCode struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}
