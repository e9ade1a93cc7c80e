package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type valueProp struct {
	Title       string
	Description string
}

func Hero(business string) g.Node {
	return Div(
		Class("hero-section"),
		ID("hero"),
		H1(
			Class("hero-title"),
			g.Text(business),
			Br(), Br(),
			Span(Class("hero-highlight"), g.Text("Turn Your Data Into Your Biggest Competitive Advantage")),
		),
		P(Class("hero-subtext"), g.Text("🚀 Get A FREE Strategy Session Worth $500")),
		P(
			Class("hero-description"),
			g.Text("Discover exactly how to unlock hidden profits in your data and make decisions that drive real growth. No fluff, just actionable insights tailored to your business."),
		),
	)
}

func ValueProps() g.Node {
	props := []valueProp{
		{"📈 Increase Revenue by 15-30%", "Identify profit opportunities hiding in your data"},
		{"💰 Cut Costs by 20-40%", "Eliminate waste and optimize operations"},
		{"🎯 Make Smarter Decisions", "Stop guessing, start knowing with data-driven insights"},
	}

	return Div(
		Class("value-props"),
		g.Group(g.Map(props, func(p valueProp) g.Node {
			return Div(
				Class("value-prop"),
				H3(g.Text(p.Title)),
				P(g.Text(p.Description)),
			)
		})),
	)
}
