package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// RegistrationServiceImpl implements domain.RegistrationService. It drives
// the account lifecycle NEW -> PENDING_VERIFICATION -> ACTIVE across the
// durable user repository and the volatile pending-code store.
type RegistrationServiceImpl struct {
	userRepo    domain.UserRepository
	otpStore    domain.OTPStore
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifier    domain.NotificationService
	codes       domain.CodeGenerator
	config      RegistrationConfig
	logger      *zap.SugaredLogger
}

type RegistrationConfig struct {
	OTPTTL    time.Duration
	AccessTTL time.Duration
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	userRepo domain.UserRepository,
	otpStore domain.OTPStore,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
	codes domain.CodeGenerator,
	config RegistrationConfig,
	logger *zap.SugaredLogger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		userRepo:    userRepo,
		otpStore:    otpStore,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
		codes:       codes,
		config:      config,
		logger:      logger,
	}
}

// validPhone accepts international-style numbers: optional formatting
// characters, digits only underneath, 10 to 20 characters. Syntactic check
// only, no carrier validation.
func validPhone(phone string) bool {
	if len(phone) < 10 || len(phone) > 20 {
		return false
	}
	stripped := strings.NewReplacer("+", "", "-", "").Replace(phone)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Register implements domain.RegistrationService
func (s *RegistrationServiceImpl) Register(ctx context.Context, name, phone, email, password, role string) (*domain.RegisterResult, error) {
	if role == "" {
		role = domain.DefaultRole
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if !validPhone(phone) {
		return nil, domain.ErrInvalidPhone
	}

	// Pre-checks give a friendly Conflict before any work is done; the
	// unique indexes on insert remain the authoritative guard.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.FindByPhone(ctx, phone); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	referralCode, err := s.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		ReferralCode: referralCode,
		Status:       domain.StatusPending,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The account is committed. Anything that goes wrong from here on is
	// reported as degraded delivery, never a rollback.
	delivered := s.issueAndSendCode(ctx, user)

	return &domain.RegisterResult{User: user, CodeDelivered: delivered}, nil
}

// uniqueReferralCode retries generation until an unused code is found.
// Collisions in the 36^10 space are rare but possible.
func (s *RegistrationServiceImpl) uniqueReferralCode(ctx context.Context) (string, error) {
	for {
		code, err := s.codes.ReferralCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		_, err = s.userRepo.FindByReferralCode(ctx, code)
		if errors.Is(err, domain.ErrUserNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
	}
}

func (s *RegistrationServiceImpl) issueAndSendCode(ctx context.Context, user *domain.User) bool {
	code, err := s.codes.OTP()
	if err != nil {
		s.logger.Errorw("otp generation failed", "email", user.Email, "error", err)
		return false
	}

	if err := s.otpStore.Put(ctx, user.Email, code, s.config.OTPTTL); err != nil {
		s.logger.Errorw("pending-code store unavailable", "email", user.Email, "error", err)
		return false
	}

	if err := s.notifier.SendOTP(user, code); err != nil {
		s.logger.Warnw("otp delivery failed", "email", user.Email, "error", err)
		return false
	}

	return true
}

// VerifyOTP implements domain.RegistrationService
func (s *RegistrationServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	stored, err := s.otpStore.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCodeExpired) {
			return nil, domain.ErrCodeExpired
		}
		return nil, fmt.Errorf("failed to read pending code: %w", err)
	}

	// Exact string equality; a mismatch does not consume the code, so a
	// later attempt with the right one still succeeds within the TTL.
	if stored != code {
		return nil, domain.ErrCodeMismatch
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsActive() {
		return nil, domain.ErrAlreadyActive
	}

	if err := s.userRepo.Activate(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyActive) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to activate account: %w", err)
	}
	user.Status = domain.StatusActive

	// The code is single-use. If deletion fails the TTL clears the key
	// and the account can no longer regress.
	if err := s.otpStore.Delete(ctx, email); err != nil {
		s.logger.Warnw("failed to delete consumed code", "email", email, "error", err)
	}

	token, err := s.tokenSvc.Issue(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Infow("account activated", "user_id", user.ID, "email", user.Email)

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.config.AccessTTL.Seconds()),
	}, nil
}

// ResendOTP implements domain.RegistrationService. Unlike Register, a
// resend that cannot deliver is useless to the caller and fails loudly.
func (s *RegistrationServiceImpl) ResendOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsActive() {
		return domain.ErrAlreadyActive
	}

	code, err := s.codes.OTP()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	// Overwrites any outstanding code and restarts the TTL; the previous
	// code is invalid from this point on.
	if err := s.otpStore.Put(ctx, email, code, s.config.OTPTTL); err != nil {
		return fmt.Errorf("failed to store pending code: %w", err)
	}

	if err := s.notifier.SendOTP(user, code); err != nil {
		s.logger.Warnw("otp resend delivery failed", "email", email, "error", err)
		return domain.ErrNotificationFailed
	}

	return nil
}

// Login implements domain.RegistrationService
func (s *RegistrationServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same error as a wrong password; do not leak which field failed.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, domain.ErrNotActivated
	}

	token, err := s.tokenSvc.Issue(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.config.AccessTTL.Seconds()),
	}, nil
}

// GetProfile implements domain.RegistrationService
func (s *RegistrationServiceImpl) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}
