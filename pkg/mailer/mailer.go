package mailer

import (
	"fmt"
	"log"
	"net/http"

	"pattern_edu_backend/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends account mail. The console implementation stands in when no
// Sendgrid key is configured (local development, tests).
type Mailer interface {
	SendPasswordReset(toEmail, toName, resetLink string) error
}

func New(cfg *config.MailConfig) Mailer {
	if cfg.SendgridAPIKey == "" {
		return &consoleMailer{}
	}
	return &sendgridMailer{cfg: cfg, client: sendgrid.NewSendClient(cfg.SendgridAPIKey)}
}

type sendgridMailer struct {
	cfg    *config.MailConfig
	client *sendgrid.Client
}

func (m *sendgridMailer) SendPasswordReset(toEmail, toName, resetLink string) error {
	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromAddress)
	to := mail.NewEmail(toName, toEmail)
	subject := "Reset your password"
	plain := fmt.Sprintf("Follow this link to reset your password: %s", resetLink)
	html := fmt.Sprintf(`<p>Follow this link to reset your password:</p><p><a href=%q>%s</a></p>`, resetLink, resetLink)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type consoleMailer struct{}

func (m *consoleMailer) SendPasswordReset(toEmail, _, resetLink string) error {
	log.Printf("password reset for %s: %s", toEmail, resetLink)
	return nil
}
