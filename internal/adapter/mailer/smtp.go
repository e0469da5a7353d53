package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// SettingsReader supplies operator-editable SMTP configuration from the
// site_settings table, so edits take effect without a restart.
type SettingsReader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

type smtpChannel struct {
	settings SettingsReader
}

func NewSMTPChannel(settings SettingsReader) Channel {
	return &smtpChannel{settings: settings}
}

func (c *smtpChannel) Name() string { return "smtp" }

func (c *smtpChannel) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	host, ok, err := c.settings.Get(ctx, domain.SettingSMTPHost)
	if err != nil {
		return fmt.Errorf("failed to read smtp settings: %w", err)
	}
	if !ok || host == "" {
		return errors.New("smtp is not configured")
	}

	port, ok, _ := c.settings.Get(ctx, domain.SettingSMTPPort)
	if !ok || port == "" {
		port = "587"
	}
	user, _, _ := c.settings.Get(ctx, domain.SettingSMTPUser)
	password, _, _ := c.settings.Get(ctx, domain.SettingSMTPPassword)
	from, ok, _ := c.settings.Get(ctx, domain.SettingSMTPFrom)
	if !ok || from == "" {
		from = user
	}
	if from == "" {
		return errors.New("smtp sender address is not configured")
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from, msg.To, msg.Subject, msg.HTMLBody)

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}

	addr := host + ":" + port
	if err := smtp.SendMail(addr, auth, from, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
