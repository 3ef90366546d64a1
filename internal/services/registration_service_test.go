package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

func TestRegistrationServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		phone          string
		setup          func(*testDeps)
		expectedError  error
		validateResult func(t *testing.T, result *domain.RegisterResult, deps *testDeps)
	}{
		{
			name:  "successful registration",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			validateResult: func(t *testing.T, result *domain.RegisterResult, deps *testDeps) {
				if result.User.Status != domain.StatusPending {
					t.Errorf("expected status pending, got %s", result.User.Status)
				}
				if result.User.PasswordHash != "hashed_secret1" {
					t.Errorf("unexpected password hash %s", result.User.PasswordHash)
				}
				if result.User.ReferralCode != "AB12CD34EF" {
					t.Errorf("unexpected referral code %s", result.User.ReferralCode)
				}
				if !result.CodeDelivered {
					t.Error("expected CodeDelivered to be true")
				}
				if len(deps.notifier.Sent) != 1 || deps.notifier.Sent[0].Code != "123456" {
					t.Errorf("expected one delivered code 123456, got %v", deps.notifier.Sent)
				}
			},
		},
		{
			name:  "empty role falls back to default",
			role:  "",
			phone: "+84912345678",
			validateResult: func(t *testing.T, result *domain.RegisterResult, deps *testDeps) {
				if result.User.Role != domain.DefaultRole {
					t.Errorf("expected default role, got %s", result.User.Role)
				}
			},
		},
		{
			name:          "unknown role rejected",
			role:          "superuser",
			phone:         "+84912345678",
			expectedError: domain.ErrInvalidRole,
		},
		{
			name:          "non-numeric phone rejected",
			role:          domain.RoleNguoiMua,
			phone:         "+84abc345678",
			expectedError: domain.ErrInvalidPhone,
		},
		{
			name:          "too-short phone rejected",
			role:          domain.RoleNguoiMua,
			phone:         "+8491",
			expectedError: domain.ErrInvalidPhone,
		},
		{
			name:  "email already registered",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pendingUser(), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:  "phone already registered",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
					return pendingUser(), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:  "insert race surfaces as conflict",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				// Pre-checks pass but a concurrent registration wins the
				// insert; the unique-index violation is the conflict.
				deps.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrUserAlreadyExists
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:  "referral collision retries until unused",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				codes := []string{"TAKEN00001", "TAKEN00002", "FREE000003"}
				deps.codes.ReferralCodeFunc = func() (string, error) {
					code := codes[0]
					if len(codes) > 1 {
						codes = codes[1:]
					}
					return code, nil
				}
				deps.userRepo.FindByReferralCodeFunc = func(ctx context.Context, code string) (*domain.User, error) {
					if code == "FREE000003" {
						return nil, domain.ErrUserNotFound
					}
					return pendingUser(), nil
				}
			},
			validateResult: func(t *testing.T, result *domain.RegisterResult, deps *testDeps) {
				if result.User.ReferralCode != "FREE000003" {
					t.Errorf("expected retried referral code, got %s", result.User.ReferralCode)
				}
			},
		},
		{
			name:  "notifier failure degrades to undelivered success",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				deps.notifier.SendOTPFunc = func(user *domain.User, code string) error {
					return errors.New("smtp relay down")
				}
			},
			validateResult: func(t *testing.T, result *domain.RegisterResult, deps *testDeps) {
				if result.User == nil {
					t.Fatal("account must survive a delivery failure")
				}
				if result.CodeDelivered {
					t.Error("expected CodeDelivered to be false")
				}
			},
		},
		{
			name:  "code store failure degrades to undelivered success",
			role:  domain.RoleNguoiMua,
			phone: "+84912345678",
			setup: func(deps *testDeps) {
				deps.otpStore.PutFunc = func(ctx context.Context, email, code string, ttl time.Duration) error {
					return errors.New("store unavailable")
				}
			},
			validateResult: func(t *testing.T, result *domain.RegisterResult, deps *testDeps) {
				if result.User == nil {
					t.Fatal("account must survive a code-store failure")
				}
				if result.CodeDelivered {
					t.Error("expected CodeDelivered to be false")
				}
				if len(deps.notifier.Sent) != 0 {
					t.Error("no code should be sent when storing it failed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newRegistrationServiceForTest(t, tt.setup)

			result, err := svc.Register(context.Background(), "Mai", tt.phone, "mai@example.com", "secret1", tt.role)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("Register() error = %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result, deps)
			}
		})
	}
}

func TestRegistrationServiceImpl_Register_StoresCodeWithTTL(t *testing.T) {
	var storedEmail, storedCode string
	var storedTTL time.Duration

	svc, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.otpStore.PutFunc = func(ctx context.Context, email, code string, ttl time.Duration) error {
			storedEmail, storedCode, storedTTL = email, code, ttl
			return nil
		}
	})

	if _, err := svc.Register(context.Background(), "Mai", "+84912345678", "mai@example.com", "secret1", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if storedEmail != "mai@example.com" {
		t.Errorf("code keyed by %q, want the registration email", storedEmail)
	}
	if len(storedCode) != 6 {
		t.Errorf("expected 6-digit code, got %q", storedCode)
	}
	if storedTTL != 60*time.Second {
		t.Errorf("expected 60s TTL, got %v", storedTTL)
	}
}

func TestRegistrationServiceImpl_VerifyOTP(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		setup          func(*testDeps)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name: "successful verification",
			code: "123456",
			setup: func(deps *testDeps) {
				deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
					return "123456", nil
				}
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pendingUser(), nil
				}
			},
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result.User.Status != domain.StatusActive {
					t.Errorf("expected active status, got %s", result.User.Status)
				}
				if result.AccessToken == "" {
					t.Error("expected a session credential")
				}
				if result.ExpiresIn != int64((30 * time.Minute).Seconds()) {
					t.Errorf("expected 30 minute expiry, got %d", result.ExpiresIn)
				}
			},
		},
		{
			name:          "no live code",
			code:          "123456",
			expectedError: domain.ErrCodeExpired,
		},
		{
			name: "code mismatch",
			code: "000000",
			setup: func(deps *testDeps) {
				deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
					return "123456", nil
				}
			},
			expectedError: domain.ErrCodeMismatch,
		},
		{
			name: "account missing",
			code: "123456",
			setup: func(deps *testDeps) {
				deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
					return "123456", nil
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "already active",
			code: "123456",
			setup: func(deps *testDeps) {
				deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
					return "123456", nil
				}
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedError: domain.ErrAlreadyActive,
		},
		{
			name: "store unavailability is surfaced, not masked",
			code: "123456",
			setup: func(deps *testDeps) {
				deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
					return "", errors.New("connection refused")
				}
			},
			validateResult: nil,
			expectedError:  nil, // checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistrationServiceForTest(t, tt.setup)

			result, err := svc.VerifyOTP(context.Background(), "mai@example.com", tt.code)

			if tt.name == "store unavailability is surfaced, not masked" {
				if err == nil || errors.Is(err, domain.ErrCodeExpired) {
					t.Fatalf("expected an infrastructure error, got %v", err)
				}
				return
			}

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("VerifyOTP() error = %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyOTP() error = %v", err)
			}
			if tt.validateResult != nil {
				tt.validateResult(t, result)
			}
		})
	}
}

func TestRegistrationServiceImpl_VerifyOTP_ConsumesCodeOnce(t *testing.T) {
	deleted := false
	svc, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
			if deleted {
				return "", domain.ErrCodeExpired
			}
			return "123456", nil
		}
		deps.otpStore.DeleteFunc = func(ctx context.Context, email string) error {
			deleted = true
			return nil
		}
		activated := false
		deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			u := pendingUser()
			if activated {
				u.Status = domain.StatusActive
			}
			return u, nil
		}
		deps.userRepo.ActivateFunc = func(ctx context.Context, userID uint) error {
			if activated {
				return domain.ErrAlreadyActive
			}
			activated = true
			return nil
		}
	})
	ctx := context.Background()

	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "123456"); err != nil {
		t.Fatalf("first VerifyOTP() error = %v", err)
	}

	// The consumed code is gone; replaying it fails as expired-or-missing.
	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "123456"); !errors.Is(err, domain.ErrCodeExpired) {
		t.Fatalf("second VerifyOTP() error = %v, want ErrCodeExpired", err)
	}
}

func TestRegistrationServiceImpl_VerifyOTP_MismatchDoesNotConsume(t *testing.T) {
	deleteCalls := 0
	svc, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
			return "123456", nil
		}
		deps.otpStore.DeleteFunc = func(ctx context.Context, email string) error {
			deleteCalls++
			return nil
		}
		deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return pendingUser(), nil
		}
	})
	ctx := context.Background()

	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "000000"); !errors.Is(err, domain.ErrCodeMismatch) {
		t.Fatalf("VerifyOTP() error = %v, want ErrCodeMismatch", err)
	}
	if deleteCalls != 0 {
		t.Fatal("a mismatch must not consume the pending code")
	}

	// The correct code still works afterwards.
	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "123456"); err != nil {
		t.Fatalf("VerifyOTP() with correct code error = %v", err)
	}
	if deleteCalls != 1 {
		t.Fatal("successful verification must consume the code")
	}
}

func TestRegistrationServiceImpl_ResendOTP(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*testDeps)
		expectedError error
	}{
		{
			name: "successful resend",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pendingUser(), nil
				}
			},
		},
		{
			name:          "unknown account",
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "already active",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedError: domain.ErrAlreadyActive,
		},
		{
			name: "delivery failure is fatal on resend",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pendingUser(), nil
				}
				deps.notifier.SendOTPFunc = func(user *domain.User, code string) error {
					return errors.New("smtp relay down")
				}
			},
			expectedError: domain.ErrNotificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistrationServiceForTest(t, tt.setup)

			err := svc.ResendOTP(context.Background(), "mai@example.com")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("ResendOTP() error = %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResendOTP() error = %v", err)
			}
		})
	}
}

func TestRegistrationServiceImpl_ResendOTP_ReplacesPriorCode(t *testing.T) {
	store := map[string]string{"mai@example.com": "111111"}

	svc, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return pendingUser(), nil
		}
		deps.codes.OTPFunc = func() (string, error) { return "222222", nil }
		deps.otpStore.PutFunc = func(ctx context.Context, email, code string, ttl time.Duration) error {
			store[email] = code
			return nil
		}
		deps.otpStore.GetFunc = func(ctx context.Context, email string) (string, error) {
			code, ok := store[email]
			if !ok {
				return "", domain.ErrCodeExpired
			}
			return code, nil
		}
	})
	ctx := context.Background()

	if err := svc.ResendOTP(ctx, "mai@example.com"); err != nil {
		t.Fatalf("ResendOTP() error = %v", err)
	}

	// The old code no longer verifies; the new one does.
	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "111111"); !errors.Is(err, domain.ErrCodeMismatch) {
		t.Fatalf("VerifyOTP() with stale code error = %v, want ErrCodeMismatch", err)
	}
	if _, err := svc.VerifyOTP(ctx, "mai@example.com", "222222"); err != nil {
		t.Fatalf("VerifyOTP() with fresh code error = %v", err)
	}
}

func TestRegistrationServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		setup         func(*testDeps)
		expectedError error
	}{
		{
			name:     "successful login",
			password: "secret1",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
		},
		{
			name:          "unknown email",
			password:      "secret1",
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "pending account with correct password",
			password: "secret1",
			setup: func(deps *testDeps) {
				deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return pendingUser(), nil
				}
			},
			expectedError: domain.ErrNotActivated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistrationServiceForTest(t, tt.setup)

			result, err := svc.Login(context.Background(), "mai@example.com", tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("Login() error = %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected a session credential")
			}
		})
	}
}

func TestRegistrationServiceImpl_Login_SameErrorForBothFailures(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	svcUnknown, _ := newRegistrationServiceForTest(t, nil)
	_, errUnknown := svcUnknown.Login(context.Background(), "ghost@example.com", "whatever")

	svcWrong, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return activeUser(), nil
		}
	})
	_, errWrong := svcWrong.Login(context.Background(), "mai@example.com", "wrong-password")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) || !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", errUnknown, errWrong)
	}
}

func TestRegistrationServiceImpl_GetProfile(t *testing.T) {
	svc, _ := newRegistrationServiceForTest(t, func(deps *testDeps) {
		deps.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			if email == "mai@example.com" {
				return activeUser(), nil
			}
			return nil, domain.ErrUserNotFound
		}
	})
	ctx := context.Background()

	user, err := svc.GetProfile(ctx, "mai@example.com")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if user.ReferralCode == "" {
		t.Error("profile should expose the referral code")
	}

	if _, err := svc.GetProfile(ctx, "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrUserNotFound", err)
	}
}
