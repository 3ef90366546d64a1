package mocks

import (
	"context"
	"time"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// MockOTPStore implements domain.OTPStore for testing
type MockOTPStore struct {
	PutFunc    func(ctx context.Context, email, code string, ttl time.Duration) error
	GetFunc    func(ctx context.Context, email string) (string, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockOTPStore creates a new MockOTPStore with default behaviors
func NewMockOTPStore() *MockOTPStore {
	return &MockOTPStore{}
}

func (m *MockOTPStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, code, ttl)
	}
	return nil
}

func (m *MockOTPStore) Get(ctx context.Context, email string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	return "", domain.ErrCodeExpired
}

func (m *MockOTPStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	return nil
}
