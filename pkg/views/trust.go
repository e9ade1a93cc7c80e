package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type trustMetric struct {
	Number string
	Label  string
}

func TrustSection() g.Node {
	metrics := []trustMetric{
		{"50+", "Businesses Transformed"},
		{"$2M+", "In Client Savings Generated"},
		{"100%", "Client Satisfaction Rate"},
	}

	return Div(
		Class("trust-section"),
		H2(g.Text("Trusted by Growing Businesses")),
		Div(
			Class("trust-items"),
			g.Group(g.Map(metrics, func(m trustMetric) g.Node {
				return Div(
					Class("trust-item"),
					Div(Class("trust-number"), g.Text(m.Number)),
					Div(Class("trust-label"), g.Text(m.Label)),
				)
			})),
		),
	)
}
