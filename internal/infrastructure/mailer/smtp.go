// Package mailer sends outbound email for the send-email routes.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/config"
)

var _ usecase.Mailer = (*SMTPMailer)(nil)

// SMTPMailer Mailer adapter over gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

// NewSMTPMailer builds the adapter from SMTP config. Returns nil when no
// host is configured, so callers can treat mail as unavailable.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPMailer{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}
}

// Send delivers one plain-text message.
func (m *SMTPMailer) Send(from, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
