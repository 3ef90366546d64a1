package services

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
	"github.com/LeHoanggggedu/RentAI-backend/internal/mocks"
)

// testDeps bundles the mock collaborators of a RegistrationService under test.
type testDeps struct {
	userRepo    *mocks.MockUserRepository
	otpStore    *mocks.MockOTPStore
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	notifier    *mocks.MockNotificationService
	codes       *mocks.MockCodeGenerator
}

// newRegistrationServiceForTest wires a RegistrationService with mock
// dependencies and the provided setup applied.
func newRegistrationServiceForTest(t *testing.T, setup func(*testDeps)) (domain.RegistrationService, *testDeps) {
	t.Helper()

	deps := &testDeps{
		userRepo:    mocks.NewMockUserRepository(),
		otpStore:    mocks.NewMockOTPStore(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		notifier:    mocks.NewMockNotificationService(),
		codes:       mocks.NewMockCodeGenerator(),
	}
	if setup != nil {
		setup(deps)
	}

	svc := NewRegistrationService(
		deps.userRepo,
		deps.otpStore,
		deps.passwordSvc,
		deps.tokenSvc,
		deps.notifier,
		deps.codes,
		RegistrationConfig{OTPTTL: 60 * time.Second, AccessTTL: 30 * time.Minute},
		zap.NewNop().Sugar(),
	)
	return svc, deps
}

// pendingUser returns a registered-but-unverified account fixture.
func pendingUser() *domain.User {
	return &domain.User{
		ID:           1,
		Name:         "Mai",
		Email:        "mai@example.com",
		Phone:        "+84912345678",
		PasswordHash: "hashed_secret1",
		Role:         domain.RoleNguoiMua,
		ReferralCode: "AB12CD34EF",
		Status:       domain.StatusPending,
	}
}

// activeUser returns a fully activated account fixture.
func activeUser() *domain.User {
	u := pendingUser()
	u.Status = domain.StatusActive
	return u
}
