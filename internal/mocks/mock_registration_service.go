package mocks

import (
	"context"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	RegisterFunc   func(ctx context.Context, name, phone, email, password, role string) (*domain.RegisterResult, error)
	VerifyOTPFunc  func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	ResendOTPFunc  func(ctx context.Context, email string) error
	LoginFunc      func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetProfileFunc func(ctx context.Context, email string) (*domain.User, error)
}

// NewMockRegistrationService creates a new MockRegistrationService with default behaviors
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

func (m *MockRegistrationService) Register(ctx context.Context, name, phone, email, password, role string) (*domain.RegisterResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, phone, email, password, role)
	}
	return &domain.RegisterResult{
		User: &domain.User{
			ID:     1,
			Name:   name,
			Phone:  phone,
			Email:  email,
			Role:   role,
			Status: domain.StatusPending,
		},
		CodeDelivered: true,
	}, nil
}

func (m *MockRegistrationService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return nil, domain.ErrCodeExpired
}

func (m *MockRegistrationService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

func (m *MockRegistrationService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockRegistrationService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}
