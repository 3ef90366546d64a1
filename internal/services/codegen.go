package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

const referralCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGeneratorImpl implements domain.CodeGenerator backed by crypto/rand.
type CodeGeneratorImpl struct {
	otpLength      int
	referralLength int
}

// NewCodeGenerator creates a generator producing fixed-width codes
func NewCodeGenerator(otpLength int) domain.CodeGenerator {
	return &CodeGeneratorImpl{
		otpLength:      otpLength,
		referralLength: 10,
	}
}

// OTP implements domain.CodeGenerator. Codes are uniform over the full
// numeric range, leading zeros included.
func (g *CodeGeneratorImpl) OTP() (string, error) {
	digits := make([]byte, g.otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// ReferralCode implements domain.CodeGenerator
func (g *CodeGeneratorImpl) ReferralCode() (string, error) {
	chars := make([]byte, g.referralLength)
	max := big.NewInt(int64(len(referralCharset)))
	for i := range chars {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		chars[i] = referralCharset[n.Int64()]
	}
	return string(chars), nil
}
