package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey     string
	fromEmail  string
	adminEmail string
}

// NewEmailService builds the SendGrid-backed notifier for the verification
// back office. An empty API key yields a no-op sender so local setups work
// without credentials.
func NewEmailService(apiKey, fromEmail, adminEmail string) EmailService {
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, adminEmail: adminEmail}
}

func (s *emailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	if s.apiKey == "" || s.adminEmail == "" {
		return nil
	}

	from := mail.NewEmail("Taxi Marketplace", s.fromEmail)
	recipient := mail.NewEmail("Admin", s.adminEmail)
	m := mail.NewSingleEmail(from, subject, recipient, message, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(m)
	if err != nil {
		return fmt.Errorf("failed to send admin notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
