package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is "json" or "text"
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Mail     MailConfig
	Contact  ContactConfig
	Twilio   TwilioConfig
	Airtable AirtableConfig
}

// MailConfig holds the outbound mail settings used by the notification dispatcher
type MailConfig struct {
	// Provider selects the transport: "smtp" or "mailgun"
	Provider       string        `env:"MAIL_PROVIDER" envDefault:"smtp"`
	SMTPServer     string        `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort       int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPTimeout    time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	SenderEmail    string        `env:"SENDER_EMAIL" envDefault:"your-email@gmail.com"`
	SenderPassword string        `env:"SENDER_PASSWORD" envDefault:"your-app-password"`
	RecipientEmail string        `env:"RECIPIENT_EMAIL" envDefault:"michael@excelerateanalytics.com"`
	MailgunDomain  string        `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey  string        `env:"MAILGUN_API_KEY"`
}

// ContactConfig is the business contact shown on the page and in fallback messages
type ContactConfig struct {
	Name     string `env:"CONTACT_NAME" envDefault:"Michael Bacon"`
	Email    string `env:"CONTACT_EMAIL" envDefault:"michael@excelerateanalytics.com"`
	Phone    string `env:"CONTACT_PHONE" envDefault:"(702) 445-2266"`
	Location string `env:"CONTACT_LOCATION" envDefault:"Las Vegas, NV"`
}

// TwilioConfig enables the optional owner SMS alert
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_FROM_NUMBER"`
	OwnerPhone string `env:"OWNER_PHONE"`
}

// Enabled reports whether every Twilio setting is present
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != "" && t.OwnerPhone != ""
}

// AirtableConfig enables the optional lead record
type AirtableConfig struct {
	APIKey     string `env:"AIRTABLE_API_KEY"`
	BaseID     string `env:"AIRTABLE_BASE_ID"`
	LeadsTable string `env:"AIRTABLE_LEADS_TABLE" envDefault:"Leads"`
}

// Enabled reports whether the Airtable credentials are present
func (a AirtableConfig) Enabled() bool {
	return a.APIKey != "" && a.BaseID != ""
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	switch cfg.Mail.Provider {
	case "smtp", "mailgun":
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Mail.Provider)
	}

	return cfg, nil
}
