package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/LeHoanggggedu/RentAI-backend/domain"
)

// TwilioServiceImpl implements domain.NotificationService over SMS, for
// deployments that verify by phone instead of email. The destination is the
// account's phone number.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendOTP implements domain.NotificationService
func (t *TwilioServiceImpl) SendOTP(user *domain.User, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetFrom(t.fromNumber)
	params.SetBody(fmt.Sprintf("Your verification code is: %s. Valid for 60 seconds.", code))

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send verification SMS: %w", err)
	}

	return nil
}
