package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// bcrypt silently ignores input beyond 72 bytes in some implementations and
// rejects it in others. Truncating up front keeps hash and verify seeing the
// same bytes, so a secret at or over the limit still round-trips.
const maxPasswordBytes = 72

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword(truncate(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncate(password))
	return err == nil
}
