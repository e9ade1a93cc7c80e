package smtp

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
)

func TestBuildMsg(t *testing.T) {
	msg, err := buildMsg(&mailer.Message{
		From:    "sender@example.com",
		To:      "owner@example.com",
		ReplyTo: "lead@example.com",
		Subject: "New Analytics Consultation Request - Acme",
		Body:    "hello",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "sender@example.com")
	assert.Contains(t, raw, "owner@example.com")
	assert.Contains(t, raw, "Reply-To:")
	assert.Contains(t, raw, "lead@example.com")
	assert.Contains(t, raw, "Subject: New Analytics Consultation Request - Acme")
	assert.Contains(t, raw, "hello")
}

func TestBuildMsgRejectsBadAddress(t *testing.T) {
	_, err := buildMsg(&mailer.Message{From: "sender@example.com", To: "not an address"})
	assert.Error(t, err)

	_, err = buildMsg(&mailer.Message{From: "sender@example.com"})
	assert.ErrorIs(t, err, mailer.ErrNoRecipient)
}

func TestSendNothing(t *testing.T) {
	c := NewClient(Config{Host: "localhost", Port: 25}, logger.Discard())
	assert.NoError(t, c.Send(context.Background()))
}

func TestSendUnreachable(t *testing.T) {
	// Port 1 on loopback refuses connections immediately.
	c := NewClient(Config{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "user",
		Password: "pass",
		Timeout:  time.Second,
	}, logger.Discard())

	err := c.Send(context.Background(), &mailer.Message{From: "a@example.com", To: "b@example.com"})
	assert.Error(t, err)
}
