package domain

import (
	"context"
	"time"
)

// UserRepository defines durable account data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByReferralCode(ctx context.Context, code string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]*User, error)
	// Activate flips status pending->active. Returns ErrAlreadyActive when
	// the account is already active and ErrUserNotFound when id is unknown.
	Activate(ctx context.Context, userID uint) error
}

// OTPStore defines the volatile pending-code store. Put unconditionally
// replaces any existing code for the email. Get never returns an expired
// code. Delete is idempotent.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// RegistrationService defines the OTP-gated registration flow
type RegistrationService interface {
	Register(ctx context.Context, name, phone, email, password, role string) (*RegisterResult, error)
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, email string) (*User, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session credential operations
type TokenService interface {
	Issue(email, role string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService delivers a verification code out-of-band. Each
// implementation picks its own destination field from the account (email
// for SMTP, phone for SMS).
type NotificationService interface {
	SendOTP(user *User, code string) error
}

// CodeGenerator produces verification and referral codes
type CodeGenerator interface {
	OTP() (string, error)
	ReferralCode() (string, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents the claims of an issued session credential
type TokenClaims struct {
	Email     string `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
