package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// OTPStoreImpl implements domain.OTPStore using Redis. Redis owns expiry:
// SET ... EX writes the code atomically with its TTL and replaces any prior
// code for the same email, and an expired key simply stops existing, so Get
// can never observe a stale code. Store unavailability propagates as the
// driver error; there is no in-memory fallback.
type OTPStoreImpl struct {
	client *redis.Client
	prefix string
}

// NewOTPStore creates a new Redis-backed pending-code store
func NewOTPStore(client *redis.Client) domain.OTPStore {
	return &OTPStoreImpl{
		client: client,
		prefix: "otp:",
	}
}

// Put implements domain.OTPStore
func (s *OTPStoreImpl) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+email, code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return nil
}

// Get implements domain.OTPStore. A missing or expired key maps to
// domain.ErrCodeExpired.
func (s *OTPStoreImpl) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, s.prefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCodeExpired
	}
	if err != nil {
		return "", fmt.Errorf("failed to read verification code: %w", err)
	}
	return code, nil
}

// Delete implements domain.OTPStore. Deleting an absent key is not an error.
func (s *OTPStoreImpl) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.prefix+email).Err(); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}
