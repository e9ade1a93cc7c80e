package models

import "strings"

// Represents the data structure coming from the consultation form
type ConsultationRequest struct {
	FirstName    string `form:"first_name" json:"first_name"`
	LastName     string `form:"last_name" json:"last_name"`
	Email        string `form:"email" json:"email"`
	Phone        string `form:"phone" json:"phone"`
	Company      string `form:"company" json:"company"`
	RevenueRange string `form:"revenue_range" json:"revenue_range"`
	Challenge    string `form:"challenge" json:"challenge"`
}

// RevenueRanges lists the selectable annual revenue ranges in display order.
// The empty string means "not specified".
var RevenueRanges = []string{
	"",
	"Under $500K",
	"$500K - $1M",
	"$1M - $5M",
	"$5M - $10M",
	"$10M+",
}

// IsRevenueRange reports whether v is one of RevenueRanges
func IsRevenueRange(v string) bool {
	for _, r := range RevenueRanges {
		if r == v {
			return true
		}
	}
	return false
}

// FullName joins first and last name
func (r ConsultationRequest) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// RevenueOrDefault returns the revenue range or "Not specified"
func (r ConsultationRequest) RevenueOrDefault() string {
	if r.RevenueRange == "" {
		return "Not specified"
	}
	return r.RevenueRange
}

// LeadRecord is the CRM row written for an accepted request
type LeadRecord struct {
	Ref          string
	Name         string
	Email        string
	Phone        string
	Company      string
	RevenueRange string
	Challenge    string
	Notified     bool
	SubmittedAt  string
}
