package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Contact is the business contact block shown in the footer
type Contact struct {
	Email    string
	Phone    string
	Location string
}

// Notice is the outcome of the last submission. The zero value shows nothing.
type Notice struct {
	Errors  []string
	Success string
	Failure string
}

func (n Notice) empty() bool {
	return len(n.Errors) == 0 && n.Success == "" && n.Failure == ""
}

var sessionBenefits = []string{
	"✅ A complete audit of your current data and analytics setup",
	"✅ Custom roadmap to increase revenue and reduce costs",
	"✅ Identification of your biggest profit opportunities",
	"✅ Actionable steps you can implement immediately",
	"✅ No-obligation consultation - zero pressure",
}

func BookingSection(notice Notice, revenueRanges []string) g.Node {
	return Div(
		ID("book"),
		H2(g.Text("Book Your Free Analytics Strategy Session")),
		P(Class("booking-intro"), Strong(g.Text("Normally $500 - Yours FREE for a Limited Time"))),
		P(
			Class("booking-intro"),
			g.Text("In just 45 minutes, we'll analyze your current data situation and show you exactly how to unlock hidden profits in your business."),
		),
		Div(
			Class("booking"),
			Div(
				H3(g.Text("What You'll Get In Your Session:")),
				g.Group(g.Map(sessionBenefits, func(b string) g.Node {
					return Div(Class("benefit-item"), g.Text(b))
				})),
			),
			Div(
				ConsultationForm(notice, revenueRanges),
				P(
					Class("privacy-note"),
					g.Text("🔒 Your information is secure and will never be shared. We'll contact you within 24 hours to schedule your session."),
				),
			),
		),
	)
}

// ConsultationForm renders the lead form. Fields always start empty.
func ConsultationForm(notice Notice, revenueRanges []string) g.Node {
	return FormEl(
		Class("consultation-form"),
		Action("/consultation#book"),
		Method("post"),
		H3(g.Text("Reserve Your Free Session")),
		g.If(!notice.empty(), Alerts(notice)),
		Div(
			Class("form-row"),
			textField("first_name", "First Name *", "text", ""),
			textField("last_name", "Last Name *", "text", ""),
		),
		textField("email", "Business Email *", "email", ""),
		textField("phone", "Phone Number *", "tel", "(555) 555-5555"),
		textField("company", "Company Name *", "text", ""),
		Div(
			Class("field"),
			Label(g.Attr("for", "revenue_range"), g.Text("Annual Revenue Range")),
			Select(
				ID("revenue_range"),
				Name("revenue_range"),
				g.Group(g.Map(revenueRanges, func(r string) g.Node {
					label := r
					if label == "" {
						label = "Select a range"
					}
					return Option(Value(r), g.Text(label))
				})),
			),
		),
		Div(
			Class("field"),
			Label(g.Attr("for", "challenge"), g.Text("What's your biggest data challenge? *")),
			Textarea(
				ID("challenge"),
				Name("challenge"),
				Rows("5"),
				Placeholder("e.g., We're not tracking the right metrics, our reports take forever to create, we can't see where we're losing money..."),
			),
		),
		Button(Type("submit"), Class("submit-button"), g.Text("🚀 Book My Free Session Now")),
	)
}

func textField(name, label, inputType, placeholder string) g.Node {
	return Div(
		Class("field"),
		Label(g.Attr("for", name), g.Text(label)),
		Input(
			ID(name),
			Name(name),
			Type(inputType),
			g.If(placeholder != "", Placeholder(placeholder)),
		),
	)
}

// Alerts renders validation errors, the thank-you message or the failure message
func Alerts(notice Notice) g.Node {
	return Div(
		ID("notice"),
		g.Attr("role", "alert"),
		g.Group(g.Map(notice.Errors, func(e string) g.Node {
			return Div(Class("alert alert-error"), g.Text(e))
		})),
		g.If(notice.Success != "", Div(Class("alert alert-success"), g.Text("🎉 "+notice.Success))),
		g.If(notice.Failure != "", Div(Class("alert alert-error"), g.Text(notice.Failure))),
	)
}
