package services

import (
	"testing"
)

func TestCodeGeneratorImpl_OTP(t *testing.T) {
	gen := NewCodeGenerator(6)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := gen.OTP()
		if err != nil {
			t.Fatalf("OTP() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6-digit code, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected digits only, got %q", code)
			}
		}
		seen[code] = struct{}{}
	}

	// 50 draws from a million-code space colliding down to a single value
	// would mean the source is broken.
	if len(seen) < 2 {
		t.Error("generator produced a constant code")
	}
}

func TestCodeGeneratorImpl_ReferralCode(t *testing.T) {
	gen := NewCodeGenerator(6)

	code, err := gen.ReferralCode()
	if err != nil {
		t.Fatalf("ReferralCode() error = %v", err)
	}
	if len(code) != 10 {
		t.Fatalf("expected 10-character code, got %q", code)
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			t.Fatalf("expected uppercase alphanumeric, got %q", code)
		}
	}

	other, err := gen.ReferralCode()
	if err != nil {
		t.Fatalf("ReferralCode() error = %v", err)
	}
	if code == other {
		t.Error("two referral codes should differ")
	}
}
