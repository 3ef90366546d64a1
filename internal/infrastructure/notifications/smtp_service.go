package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// SMTPServiceImpl implements domain.NotificationService over SMTP. This is
// the default delivery channel: the verification code goes to the email the
// account is registering with.
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(host string, port int, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendOTP implements domain.NotificationService
func (s *SMTPServiceImpl) SendOTP(user *domain.User, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Your verification code")

	body := fmt.Sprintf(`
		<h2>Account verification</h2>
		<p>Your verification code is: <strong style="font-size: 24px; color: #2563eb;">%s</strong></p>
		<p>The code is valid for 60 seconds.</p>
		<p>If you did not request this code, you can ignore this email.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}
