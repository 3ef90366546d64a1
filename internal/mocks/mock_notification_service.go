package mocks

import "github.com/LeHoanggggedu/RentAI-backend/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendOTPFunc func(user *domain.User, code string) error

	// Sent records every delivered (user, code) pair for assertions.
	Sent []SentCode
}

type SentCode struct {
	Email string
	Phone string
	Code  string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendOTP(user *domain.User, code string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(user, code)
	}
	m.Sent = append(m.Sent, SentCode{Email: user.Email, Phone: user.Phone, Code: code})
	return nil
}
