// Package mailer provides outbound email delivery over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends a single email synchronously.
type Mailer interface {
	Send(to, subject, body string, html bool) error
}

// Config holds the SMTP connection and sender identity settings.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

// NewSMTPMailer creates a Mailer that dials the configured SMTP server per send.
func NewSMTPMailer(cfg Config) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.FromAddress,
		name:   cfg.FromName,
	}
}

func (m *smtpMailer) Send(to, subject, body string, html bool) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.name)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if html {
		msg.SetBody("text/html", body)
	} else {
		msg.SetBody("text/plain", body)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
