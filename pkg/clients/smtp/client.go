package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
)

// Config holds the SMTP server address and sender credentials
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type clientImpl struct {
	cfg Config
	log *slog.Logger
}

// NewClient creates a new SMTP sender. Connections use STARTTLS and PLAIN auth.
func NewClient(cfg Config, log *slog.Logger) mailer.Sender {
	return &clientImpl{
		cfg: cfg,
		log: log.With(logger.Scope("clients.smtp")),
	}
}

// Send dials the server once, authenticates, and delivers every message in order.
func (c *clientImpl) Send(ctx context.Context, msgs ...*mailer.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	out := make([]*mail.Msg, 0, len(msgs))
	for _, m := range msgs {
		msg, err := buildMsg(m)
		if err != nil {
			return err
		}
		out = append(out, msg)
	}

	client, err := mail.NewClient(c.cfg.Host, c.options()...)
	if err != nil {
		return fmt.Errorf("error creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out...); err != nil {
		return fmt.Errorf("error sending mail via %s:%d: %w", c.cfg.Host, c.cfg.Port, err)
	}

	c.log.Debug("mail sent", slog.Int("count", len(out)), slog.String("host", c.cfg.Host))
	return nil
}

func (c *clientImpl) options() []mail.Option {
	opts := []mail.Option{
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithPort(c.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.cfg.Username),
		mail.WithPassword(c.cfg.Password),
	}
	if c.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(c.cfg.Timeout))
	}
	return opts
}

func buildMsg(m *mailer.Message) (*mail.Msg, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("error setting sender %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("error setting recipient %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("error setting reply-to %q: %w", m.ReplyTo, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return msg, nil
}
