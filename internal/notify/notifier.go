package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
)

// Notifier delivers transactional email. Callers decide the policy for
// failures; the workflow services log and continue, so a dead mail provider
// never rolls back a state change that already persisted.
type Notifier interface {
	Send(to, subject, body string) error
}

// New picks the implementation from config: dev mode (or no API key) logs
// instead of sending.
func New(cfg *config.Config) Notifier {
	if cfg.EmailDevMode || cfg.ResendAPIKey == "" {
		slog.Info("email notifications in dev mode (logging only)")
		return &logNotifier{}
	}
	return &resendNotifier{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.EmailFrom,
	}
}

type resendNotifier struct {
	client *resend.Client
	from   string
}

func (n *resendNotifier) Send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("notify: empty recipient")
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	if _, err := n.client.Emails.SendWithContext(context.Background(), params); err != nil {
		return fmt.Errorf("notify: send to %s: %w", to, err)
	}
	slog.Info("email sent", "to", to, "subject", subject)
	return nil
}

type logNotifier struct{}

func (n *logNotifier) Send(to, subject, body string) error {
	slog.Info("email sent (dev mode)", "to", to, "subject", subject, "body", body)
	return nil
}
