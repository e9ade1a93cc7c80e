package views

import (
	g "maragu.dev/gomponents"
)

// LandingData is everything the landing page needs
type LandingData struct {
	Business      string
	Contact       Contact
	RevenueRanges []string
	Year          int
	Notice        Notice
}

func LandingPage(data LandingData) g.Node {
	return Layout(
		PageConfig{Title: data.Business},
		Hero(data.Business),
		ValueProps(),
		TrustSection(),
		BookingSection(data.Notice, data.RevenueRanges),
		PageFooter(data.Business, data.Contact, data.Year),
	)
}
