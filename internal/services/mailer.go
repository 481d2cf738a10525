package services

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/offerme/offerme-backend/internal/config"
)

// EmailService delivers notification emails over authenticated SMTP-SSL
type EmailService struct {
	host     string
	port     int
	sender   string
	password string
	receiver string
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.EmailSender == "" || cfg.EmailPassword == "" || cfg.EmailReceiver == "" {
		return nil, fmt.Errorf("missing email credentials in environment variables")
	}

	return &EmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		sender:   cfg.EmailSender,
		password: cfg.EmailPassword,
		receiver: cfg.EmailReceiver,
	}, nil
}

// Send delivers a plain-text email to the fixed recipient
func (e *EmailService) Send(subject string, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.sender)
	m.SetHeader("To", e.receiver)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(e.host, e.port, e.sender, e.password)
	d.SSL = true

	return d.DialAndSend(m)
}
