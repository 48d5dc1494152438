// Package mailer delivers contact-form messages.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

var (
	// ErrNotConfigured means SMTP credentials are missing.
	ErrNotConfigured = errors.New("SMTP credentials not configured")
	// ErrHeaderInjection means a header value contained a line break.
	ErrHeaderInjection = errors.New("line break in header value")
)

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the relay settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string // defaults to User
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender sends plain-text mail through an authenticated relay.
type SMTPSender struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// Send composes and delivers msg. The context is only checked before dialing;
// net/smtp has no cancellation of its own.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := Compose(s.cfg.User, s.cfg.To, msg)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := s.send(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, raw); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", msg.Name, msg.Email)
	return nil
}

// Compose builds the RFC 5322 message for a submission.
func Compose(from, to string, msg Message) ([]byte, error) {
	for _, v := range []string{from, to, msg.Name, msg.Email} {
		if strings.ContainsAny(v, "\r\n") {
			return nil, ErrHeaderInjection
		}
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n"), nil
}
