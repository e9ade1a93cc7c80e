// Package mailer defines the outbound mail message and the Sender capability
// that transports implement.
package mailer

import (
	"context"
	"errors"
)

// ErrNoRecipient is returned when a message has no To address.
var ErrNoRecipient = errors.New("message has no recipient")

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Validate checks the fields every transport needs.
func (m *Message) Validate() error {
	if m.To == "" {
		return ErrNoRecipient
	}
	if m.From == "" {
		return errors.New("message has no sender")
	}
	return nil
}

// Sender delivers messages. Implementations send all messages in one
// session where the transport allows it and return the first failure.
type Sender interface {
	Send(ctx context.Context, msgs ...*Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msgs ...*Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msgs ...*Message) error {
	return f(ctx, msgs...)
}
