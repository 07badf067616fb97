// Package mail implements the outbound mail transport over SMTP.
package mail

import (
	"crypto/tls"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Config captures the SMTP server settings.
type Config struct {
	Host     string
	Port     int
	UseTLS   bool
	Username string
	Password string
}

// Mailer sends plain-text mail through a gomail dialer. Sending is
// synchronous; each Send opens a connection, delivers, and closes.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg Config) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	}
	return &Mailer{dialer: d, from: cfg.Username}
}

func (m *Mailer) Send(to []string, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
