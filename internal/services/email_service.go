package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, fullName string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	return &emailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, fullName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to our agency")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>You are now registered with our real estate office.</p>
		<p>Your personal agent will contact you shortly.</p>
	`, fullName)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}
