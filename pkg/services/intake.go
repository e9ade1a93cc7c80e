package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/excelerateanalytics/website/pkg/clients/airtable"
	"github.com/excelerateanalytics/website/pkg/clients/twilio"
	"github.com/excelerateanalytics/website/pkg/config"
	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/models"
	"github.com/excelerateanalytics/website/pkg/utils"
)

// Outcome is the terminal state of a submission
type Outcome string

const (
	OutcomeRejected             Outcome = "rejected"
	OutcomeNotified             Outcome = "notified"
	OutcomeNotifiedWithFallback Outcome = "notified_with_fallback"
	OutcomeFailed               Outcome = "failed"
)

// Result is what the visitor is shown after submitting the form
type Result struct {
	Outcome Outcome
	// Message is the thank-you or failure text; empty when rejected
	Message string
	// Errors holds the validation messages when rejected
	Errors  []string
}

// IntakeService defines the interface for handling consultation requests
type IntakeService interface {
	Submit(ctx context.Context, req models.ConsultationRequest) Result
}

// IntakeOption wires optional side notifications into the intake service
type IntakeOption func(*intakeServiceImpl)

// WithSMSAlert texts the owner about every accepted request
func WithSMSAlert(client twilio.Client, ownerPhone string) IntakeOption {
	return func(s *intakeServiceImpl) {
		s.sms = client
		s.ownerPhone = ownerPhone
	}
}

// WithLeadLog records every accepted request in an Airtable table
func WithLeadLog(client airtable.Client, table string) IntakeOption {
	return func(s *intakeServiceImpl) {
		s.leads = client
		s.leadsTable = table
	}
}

// WithClock overrides time.Now for lead timestamps
func WithClock(now func() time.Time) IntakeOption {
	return func(s *intakeServiceImpl) {
		s.now = now
	}
}

type intakeServiceImpl struct {
	notifier   Notifier
	contact    config.ContactConfig
	sms        twilio.Client
	ownerPhone string
	leads      airtable.Client
	leadsTable string
	now        func() time.Time
	log        *slog.Logger
}

// NewIntakeService creates a new intake service
func NewIntakeService(notifier Notifier, contact config.ContactConfig, log *slog.Logger, opts ...IntakeOption) IntakeService {
	s := &intakeServiceImpl{
		notifier: notifier,
		contact:  contact,
		now:      time.Now,
		log:      log.With(logger.Scope("services.intake")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates req and, when valid, sends the notification emails. A
// delivery failure still acknowledges the lead, with a direct contact fallback.
func (s *intakeServiceImpl) Submit(ctx context.Context, req models.ConsultationRequest) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("error processing consultation request", slog.Any("panic", r))
			res = Result{Outcome: OutcomeFailed, Message: FailureMessage(s.contact.Email)}
		}
	}()

	var verr *ValidationError
	if err := ValidateRequest(req); errors.As(err, &verr) {
		s.log.Info("consultation request rejected", slog.Int("errors", len(verr.Messages)))
		return Result{Outcome: OutcomeRejected, Errors: verr.Messages}
	}

	req = normalize(req)
	ref := utils.LeadRef(req.Email)
	s.log.Info("new consultation request", slog.String("lead", ref), slog.String("company", req.Company))

	notified := s.notifier.Dispatch(ctx, req)

	s.alertOwner(req)
	s.recordLead(ctx, ref, req, notified)

	if notified {
		return Result{
			Outcome: OutcomeNotified,
			Message: fmt.Sprintf("Thank you %s! We've received your consultation request and will contact you within 24 hours to schedule your free strategy session.", req.FirstName),
		}
	}

	s.log.Warn("lead acknowledged without email confirmation", slog.String("lead", ref))
	return Result{
		Outcome: OutcomeNotifiedWithFallback,
		Message: fmt.Sprintf("Thank you %s! We've received your consultation request. If you don't hear from us within 24 hours, please contact us directly at %s or %s.", req.FirstName, s.contact.Email, s.contact.Phone),
	}
}

// FailureMessage is shown when a submission could not be processed at all
func FailureMessage(contactEmail string) string {
	return "There was an error processing your request. Please try again or contact us directly at " + contactEmail
}

func (s *intakeServiceImpl) alertOwner(req models.ConsultationRequest) {
	if s.sms == nil {
		return
	}

	body := fmt.Sprintf("New consultation request: %s (%s) %s", req.FullName(), req.Company, req.Phone)
	if err := s.sms.SendSMS(s.ownerPhone, body); err != nil {
		s.log.Warn("failed to send owner sms alert", logger.Error(err))
	}
}

func (s *intakeServiceImpl) recordLead(ctx context.Context, ref string, req models.ConsultationRequest, notified bool) {
	if s.leads == nil {
		return
	}

	exists, err := s.leads.RecordExists(ctx, s.leadsTable, "Ref", ref)
	if err != nil {
		s.log.Warn("failed to check lead table", slog.String("lead", ref), logger.Error(err))
		return
	}
	if exists {
		s.log.Info("lead already recorded", slog.String("lead", ref))
		return
	}

	rec := models.LeadRecord{
		Ref:          ref,
		Name:         req.FullName(),
		Email:        strings.ToLower(req.Email),
		Phone:        req.Phone,
		Company:      req.Company,
		RevenueRange: req.RevenueOrDefault(),
		Challenge:    req.Challenge,
		Notified:     notified,
		SubmittedAt:  s.now().UTC().Format(time.RFC3339),
	}

	if err := s.leads.CreateRecord(ctx, s.leadsTable, leadFields(rec)); err != nil {
		s.log.Warn("failed to record lead", slog.String("lead", ref), logger.Error(err))
	}
}

func leadFields(rec models.LeadRecord) map[string]interface{} {
	return map[string]interface{}{
		"Ref":           rec.Ref,
		"Name":          rec.Name,
		"Email":         rec.Email,
		"Phone":         rec.Phone,
		"Company":       rec.Company,
		"Revenue Range": rec.RevenueRange,
		"Challenge":     rec.Challenge,
		"Email Sent":    rec.Notified,
		"Submitted At":  rec.SubmittedAt,
	}
}
