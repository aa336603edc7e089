package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Mailer sends one email. Implementations are selected from the
// environment at startup: RESEND_API_KEY picks the Resend HTTP API,
// otherwise SMTP_* variables configure a plain SMTP sender.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailerFromEnv returns the configured Mailer, or nil when neither
// provider is configured. Callers must treat a nil Mailer as "email
// disabled" and report sends as failed.
func NewMailerFromEnv(log zerolog.Logger) Mailer {
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		from := os.Getenv("MAIL_FROM")
		if from == "" {
			from = "noreply@amasi.org"
		}
		log.Info().Str("provider", "resend").Msg("email provider configured")
		return &resendMailer{
			apiKey: key,
			from:   from,
			client: &http.Client{Timeout: 15 * time.Second},
		}
	}
	if host := os.Getenv("SMTP_HOST"); host != "" {
		m := &smtpMailer{
			host: host,
			port: os.Getenv("SMTP_PORT"),
			user: os.Getenv("SMTP_USER"),
			pass: os.Getenv("SMTP_PASS"),
			from: os.Getenv("MAIL_FROM"),
		}
		if m.port == "" {
			m.port = "587"
		}
		if m.from == "" {
			m.from = m.user
		}
		log.Info().Str("provider", "smtp").Str("host", host).Msg("email provider configured")
		return m
	}
	log.Warn().Msg("no email provider configured; email sends will fail")
	return nil
}

// resendMailer posts to the Resend REST API.
type resendMailer struct {
	apiKey string
	from   string
	client *http.Client
}

func (m *resendMailer) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(map[string]any{
		"from":    m.from,
		"to":      []string{to},
		"subject": subject,
		"html":    body,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// smtpMailer sends through a plain SMTP relay.
type smtpMailer struct {
	host, port, user, pass, from string
}

func (m *smtpMailer) Send(_ context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body)
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}
