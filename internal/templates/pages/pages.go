// Package pages assembles the public pages. Pages take no input: each is a
// fixed arrangement of sections inside a layout.
package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/templates/components"
	"github.com/joe135730/Concensor-sub001/internal/templates/layouts"
	"github.com/joe135730/Concensor-sub001/internal/view"
)

// Login renders the sign-in page.
func Login() templ.Component {
	return layouts.Document(
		layouts.Head{
			Title:       "Sign in | " + components.Brand,
			Description: "Sign in to " + components.Brand + " with your GitHub account.",
			Stylesheets: []string{static.BaseStylesheet, static.LoginStylesheet},
		},
		layouts.Auth(components.LoginForm()),
	)
}

// Home renders the landing page.
func Home() templ.Component {
	return layouts.Document(
		layouts.Head{
			Title:       components.Brand + " | Decide together",
			Description: components.Brand + " helps teams reach decisions everyone can stand behind.",
			Stylesheets: []string{static.BaseStylesheet, static.HomeStylesheet},
		},
		layouts.Main(view.Group(
			components.HeroSection(),
			components.FeaturesSection(),
			components.InfoSection(),
		)),
	)
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return layouts.Document(
		layouts.Head{
			Title:       "Page not found | " + components.Brand,
			Stylesheets: []string{static.BaseStylesheet, static.HomeStylesheet},
		},
		layouts.Main(view.Component(
			h.Section(h.Class("hero"), h.Data("component", "not-found"),
				h.H1(h.Class("hero__title"), g.Text("Page not found")),
				h.P(h.Class("hero__tagline"), g.Text("The page you are looking for does not exist.")),
				h.A(h.Class("hero__cta"), h.Href("/"), g.Text("Back to home")),
			),
		)),
	)
}
