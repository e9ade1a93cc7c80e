package twilio

import (
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/excelerateanalytics/website/pkg/logger"
)

// Client defines the interface for sending SMS alerts through Twilio
type Client interface {
	SendSMS(to, body string) error
}

// messageCreator is the part of the Twilio REST API the client calls
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type clientImpl struct {
	api  messageCreator
	from string
	log  *slog.Logger
}

// NewClient creates a new Twilio client sending from the given number
func NewClient(accountSid, authToken, from string, log *slog.Logger) Client {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &clientImpl{
		api:  client.Api,
		from: from,
		log:  log.With(logger.Scope("clients.twilio")),
	}
}

func (c *clientImpl) SendSMS(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("error sending sms: %w", err)
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.log.Debug("sms sent", slog.String("sid", sid))
	return nil
}
