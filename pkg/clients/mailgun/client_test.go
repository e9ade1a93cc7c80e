package mailgun

import (
	"context"
	"errors"
	"testing"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
)

type fakeMailgun struct {
	*mailgun.MailgunImpl
	sent    int
	failAt  int
	lastErr error
}

func (f *fakeMailgun) Send(_ context.Context, _ *mailgun.Message) (string, string, error) {
	f.sent++
	if f.sent == f.failAt {
		return "", "", f.lastErr
	}
	return "Queued", "<id@mg.example.com>", nil
}

func TestNewClientRequiresConfig(t *testing.T) {
	_, err := NewClient("", "key", logger.Discard())
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient("mg.example.com", "", logger.Discard())
	assert.ErrorIs(t, err, ErrNotConfigured)

	c, err := NewClient("mg.example.com", "key", logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSend(t *testing.T) {
	fake := &fakeMailgun{MailgunImpl: mailgun.NewMailgun("mg.example.com", "key")}
	c := &clientImpl{mg: fake, log: logger.Discard()}

	err := c.Send(context.Background(),
		&mailer.Message{From: "a@example.com", To: "b@example.com", ReplyTo: "c@example.com"},
		&mailer.Message{From: "a@example.com", To: "c@example.com"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.sent)
}

func TestSendStopsOnFailure(t *testing.T) {
	fake := &fakeMailgun{
		MailgunImpl: mailgun.NewMailgun("mg.example.com", "key"),
		failAt:      1,
		lastErr:     errors.New("401 unauthorized"),
	}
	c := &clientImpl{mg: fake, log: logger.Discard()}

	err := c.Send(context.Background(),
		&mailer.Message{From: "a@example.com", To: "b@example.com"},
		&mailer.Message{From: "a@example.com", To: "c@example.com"},
	)
	assert.ErrorContains(t, err, "401 unauthorized")
	assert.Equal(t, 1, fake.sent)
}

func TestSendRejectsInvalidMessage(t *testing.T) {
	fake := &fakeMailgun{MailgunImpl: mailgun.NewMailgun("mg.example.com", "key")}
	c := &clientImpl{mg: fake, log: logger.Discard()}

	err := c.Send(context.Background(), &mailer.Message{From: "a@example.com"})
	assert.ErrorIs(t, err, mailer.ErrNoRecipient)
	assert.Zero(t, fake.sent)
}
