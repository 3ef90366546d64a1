package mocks

// MockCodeGenerator implements domain.CodeGenerator for testing
type MockCodeGenerator struct {
	OTPFunc          func() (string, error)
	ReferralCodeFunc func() (string, error)
}

// NewMockCodeGenerator creates a new MockCodeGenerator with default behaviors
func NewMockCodeGenerator() *MockCodeGenerator {
	return &MockCodeGenerator{}
}

func (m *MockCodeGenerator) OTP() (string, error) {
	if m.OTPFunc != nil {
		return m.OTPFunc()
	}
	return "123456", nil
}

func (m *MockCodeGenerator) ReferralCode() (string, error) {
	if m.ReferralCodeFunc != nil {
		return m.ReferralCodeFunc()
	}
	return "AB12CD34EF", nil
}
