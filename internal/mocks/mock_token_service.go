package mocks

import "github.com/LeHoanggggedu/RentAI-backend/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc    func(email, role string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(email, role string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(email, role)
	}
	return "token_" + email, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
