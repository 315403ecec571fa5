package contact

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pkg/errors"
)

// SMTPConfig holds mail server settings for direct delivery.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// SMTPSender mails submissions to the portfolio owner.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Name() string { return "smtp" }

func (s *SMTPSender) Deliver(ctx context.Context, sub Submission) error {
	if s.cfg.User == "" || s.cfg.Password == "" || s.cfg.To == "" {
		return errors.Wrap(ErrNotConfigured, "SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, s.compose(sub))
	if err != nil {
		return errors.Wrap(err, "failed to send contact email")
	}
	return nil
}

func (s *SMTPSender) compose(sub Submission) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Company: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Company, sub.Message)

	return []byte("To: " + s.cfg.To + "\r\n" +
		"Subject: Portfolio Contact: " + sub.Subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + sub.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
