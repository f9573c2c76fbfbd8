// Package components holds the self-contained visual blocks pages are built
// from. None of them take input from page code.
package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/view"
)

// Brand is the product name shown in the header and footer.
const Brand = "Concensor"

type link struct {
	Label string
	Href  string
}

var navLinks = []link{
	{Label: "Features", Href: "/#features"},
	{Label: "How it works", Href: "/#info"},
	{Label: "Sign in", Href: "/login"},
}

var footerLinks = []link{
	{Label: "Privacy", Href: "/privacy"},
	{Label: "Terms", Href: "/terms"},
	{Label: "Contact", Href: "mailto:hello@concensor.app"},
}

// Header renders the site header with brand and navigation.
func Header() templ.Component {
	return view.Component(
		h.Header(h.Class("site-header"), h.Data("component", "header"),
			h.A(h.Class("site-header__brand"), h.Href("/"), g.Text(Brand)),
			h.Nav(h.Class("site-header__nav"), h.Aria("label", "Main"),
				g.Map(navLinks, anchor),
			),
		),
	)
}

// Footer renders the site footer.
func Footer() templ.Component {
	return view.Component(
		h.Footer(h.Class("site-footer"), h.Data("component", "footer"),
			h.P(g.Text("© "+Brand+". Decide together.")),
			h.Nav(h.Class("site-footer__links"), h.Aria("label", "Footer"),
				g.Map(footerLinks, anchor),
			),
		),
	)
}

func anchor(l link) g.Node {
	return h.A(h.Href(l.Href), g.Text(l.Label))
}
