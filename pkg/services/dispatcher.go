package services

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/aymerick/raymond"

	"github.com/excelerateanalytics/website/pkg/config"
	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/mailer"
	"github.com/excelerateanalytics/website/pkg/models"
	"github.com/excelerateanalytics/website/pkg/utils"
)

// BusinessName appears in the prospect confirmation and on the page
const BusinessName = "Excelerate Analytics, LLC"

const (
	ownerSubjectPrefix = "New Analytics Consultation Request - "
	prospectSubject    = "Your Free Analytics Consultation Request - Excelerate Analytics"
	timestampLayout    = "January 02, 2006 at 03:04 PM"
)

//go:embed templates/*.hbs
var templateFS embed.FS

var (
	ownerTemplate    = mustTemplate("templates/owner.txt.hbs")
	prospectTemplate = mustTemplate("templates/prospect.txt.hbs")
)

func mustTemplate(name string) *raymond.Template {
	src, err := templateFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("missing email template %s: %v", name, err))
	}
	return raymond.MustParse(string(src))
}

// Notifier sends the owner alert and prospect confirmation for an accepted request
type Notifier interface {
	Dispatch(ctx context.Context, req models.ConsultationRequest) bool
}

// DispatcherConfig is the addressing the dispatcher needs. Transport
// credentials live with the mailer.Sender.
type DispatcherConfig struct {
	SenderEmail    string
	RecipientEmail string
	Contact        config.ContactConfig
}

// Dispatcher composes the two notification emails and hands them to a mailer.Sender
type Dispatcher struct {
	sender mailer.Sender
	cfg    DispatcherConfig
	now    func() time.Time
	log    *slog.Logger
}

// NewDispatcher creates a dispatcher. now may be nil, in which case time.Now is used.
func NewDispatcher(sender mailer.Sender, cfg DispatcherConfig, now func() time.Time, log *slog.Logger) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		sender: sender,
		cfg:    cfg,
		now:    now,
		log:    log.With(logger.Scope("services.dispatcher")),
	}
}

// Dispatch sends both messages in one transport session. Failures are logged
// and reported as false; they never reach the caller as errors or panics.
func (d *Dispatcher) Dispatch(ctx context.Context, req models.ConsultationRequest) (ok bool) {
	ref := utils.LeadRef(req.Email)

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("mail transport panicked", slog.String("lead", ref), slog.Any("panic", r))
			ok = false
		}
	}()

	owner, err := d.OwnerMessage(req)
	if err != nil {
		d.log.Error("failed to compose owner notification", slog.String("lead", ref), logger.Error(err))
		return false
	}
	prospect, err := d.ProspectMessage(req)
	if err != nil {
		d.log.Error("failed to compose prospect confirmation", slog.String("lead", ref), logger.Error(err))
		return false
	}

	if err := d.sender.Send(ctx, owner, prospect); err != nil {
		d.log.Error("failed to send emails", slog.String("lead", ref), logger.Error(err))
		return false
	}

	d.log.Info("emails sent", slog.String("lead", ref))
	return true
}

// OwnerMessage builds the business-owner alert. Replies go to the prospect.
func (d *Dispatcher) OwnerMessage(req models.ConsultationRequest) (*mailer.Message, error) {
	body, err := ownerTemplate.Exec(map[string]string{
		"firstName":   req.FirstName,
		"lastName":    req.LastName,
		"email":       req.Email,
		"phone":       req.Phone,
		"company":     req.Company,
		"revenue":     req.RevenueOrDefault(),
		"challenge":   req.Challenge,
		"submittedAt": d.now().Format(timestampLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("error rendering owner template: %w", err)
	}

	return &mailer.Message{
		From:    d.cfg.SenderEmail,
		To:      d.cfg.RecipientEmail,
		ReplyTo: req.Email,
		Subject: ownerSubjectPrefix + req.Company,
		Body:    body,
	}, nil
}

// ProspectMessage builds the confirmation sent to the prospect
func (d *Dispatcher) ProspectMessage(req models.ConsultationRequest) (*mailer.Message, error) {
	body, err := prospectTemplate.Exec(map[string]string{
		"firstName":    req.FirstName,
		"business":     BusinessName,
		"contactName":  d.cfg.Contact.Name,
		"contactEmail": d.cfg.Contact.Email,
		"contactPhone": d.cfg.Contact.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("error rendering prospect template: %w", err)
	}

	return &mailer.Message{
		From:    d.cfg.SenderEmail,
		To:      req.Email,
		Subject: prospectSubject,
		Body:    body,
	}, nil
}
