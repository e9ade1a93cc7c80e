package mailgun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
)

// ErrNotConfigured is returned by NewClient when the domain or API key is missing
var ErrNotConfigured = errors.New("mailgun is not configured")

// messageSender is the subset of the Mailgun SDK the client uses
type messageSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

type clientImpl struct {
	mg  messageSender
	log *slog.Logger
}

// NewClient creates a sender backed by the Mailgun HTTP API
func NewClient(domain, apiKey string, log *slog.Logger) (mailer.Sender, error) {
	if domain == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}

	return &clientImpl{
		mg:  mailgun.NewMailgun(domain, apiKey),
		log: log.With(logger.Scope("clients.mailgun")),
	}, nil
}

// Send posts each message to Mailgun in order, stopping at the first failure.
func (c *clientImpl) Send(ctx context.Context, msgs ...*mailer.Message) error {
	for _, m := range msgs {
		if err := m.Validate(); err != nil {
			return err
		}

		message := c.mg.NewMessage(m.From, m.Subject, m.Body, m.To)
		if m.ReplyTo != "" {
			message.SetReplyTo(m.ReplyTo)
		}

		_, id, err := c.mg.Send(ctx, message)
		if err != nil {
			return fmt.Errorf("error sending mail via mailgun: %w", err)
		}

		c.log.Debug("mail sent", slog.String("message_id", id))
	}
	return nil
}
