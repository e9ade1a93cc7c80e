package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(business string, contact Contact, year int) g.Node {
	return Div(
		Class("footer"),
		Div(
			Class("footer-columns"),
			Div(
				H4(g.Text(business)),
				P(g.Text("Transforming data into competitive advantages for ambitious businesses.")),
			),
			Div(
				H4(g.Text("Contact Info")),
				P(
					A(Href("mailto:"+contact.Email), g.Text(contact.Email)), Br(),
					g.Text(contact.Phone), Br(),
					g.Text(contact.Location),
				),
			),
		),
		P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, business))),
	)
}
