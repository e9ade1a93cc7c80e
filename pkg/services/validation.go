package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/excelerateanalytics/website/pkg/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// minPhoneLength is the shortest accepted phone number once separators are removed
const minPhoneLength = 10

// Validation messages, in check order
const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgPhoneRequired     = "Phone number is required"
	MsgPhoneInvalid      = "Please enter a valid phone number"
	MsgCompanyRequired   = "Company name is required"
	MsgChallengeRequired = "Please describe your biggest data challenge"
	MsgRevenueInvalid    = "Please select a valid revenue range"
)

// ValidationError carries every failed field rule for a submission
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid consultation request: " + strings.Join(e.Messages, "; ")
}

// ValidEmail reports whether email has a local@domain.tld shape
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone has at least ten characters once spaces,
// hyphens, parentheses and dots are removed
func ValidPhone(phone string) bool {
	return utf8.RuneCountInString(stripPhoneSeparators(phone)) >= minPhoneLength
}

func stripPhoneSeparators(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		switch r {
		case '-', '(', ')', '.':
			return -1
		}
		return r
	}, phone)
}

// Validate returns the failed rules for req in a fixed order: first name,
// last name, email, phone, company, challenge, revenue range. An empty
// result means the request is valid.
func Validate(req models.ConsultationRequest) []string {
	var errs []string

	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, MsgFirstNameRequired)
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, MsgLastNameRequired)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, MsgEmailRequired)
	} else if !ValidEmail(email) {
		errs = append(errs, MsgEmailInvalid)
	}

	if strings.TrimSpace(req.Phone) == "" {
		errs = append(errs, MsgPhoneRequired)
	} else if !ValidPhone(req.Phone) {
		errs = append(errs, MsgPhoneInvalid)
	}

	if strings.TrimSpace(req.Company) == "" {
		errs = append(errs, MsgCompanyRequired)
	}
	if strings.TrimSpace(req.Challenge) == "" {
		errs = append(errs, MsgChallengeRequired)
	}
	if !models.IsRevenueRange(req.RevenueRange) {
		errs = append(errs, MsgRevenueInvalid)
	}

	return errs
}

// ValidateRequest wraps Validate, returning a *ValidationError when any rule fails
func ValidateRequest(req models.ConsultationRequest) error {
	if errs := Validate(req); len(errs) > 0 {
		return &ValidationError{Messages: errs}
	}
	return nil
}

// normalize trims surrounding whitespace from every field
func normalize(req models.ConsultationRequest) models.ConsultationRequest {
	return models.ConsultationRequest{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Company:      strings.TrimSpace(req.Company),
		RevenueRange: req.RevenueRange,
		Challenge:    strings.TrimSpace(req.Challenge),
	}
}
