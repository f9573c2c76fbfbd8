package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/view"
)

type feature struct {
	Title string
	Body  string
}

var features = []feature{
	{
		Title: "Proposals, not threads",
		Body:  "Turn a discussion into a concrete proposal everyone can react to.",
	},
	{
		Title: "Weighted consent",
		Body:  "Collect agreement, concerns and blocks instead of a bare yes or no.",
	},
	{
		Title: "A record of why",
		Body:  "Every decision keeps the reasoning and objections that shaped it.",
	},
}

var steps = []string{
	"Draft a proposal and invite the people it affects.",
	"Gather reactions and resolve concerns in one place.",
	"Close the round and share the outcome with its history.",
}

// HeroSection renders the landing headline and call to action.
func HeroSection() templ.Component {
	return view.Component(
		h.Section(h.Class("hero"), h.Data("component", "hero"),
			h.H1(h.Class("hero__title"), g.Text("Reach decisions your team actually agrees on")),
			h.P(h.Class("hero__tagline"),
				g.Text(Brand+" gives every voice a place in the decision and keeps the outcome easy to trace."),
			),
			h.A(h.Class("hero__cta"), h.Href("/login"), g.Text("Get started")),
		),
	)
}

// FeaturesSection renders the feature grid.
func FeaturesSection() templ.Component {
	return view.Component(
		h.Section(h.ID("features"), h.Class("features"), h.Data("component", "features"),
			g.Map(features, func(f feature) g.Node {
				return h.Article(h.Class("features__item"),
					h.H3(g.Text(f.Title)),
					h.P(g.Text(f.Body)),
				)
			}),
		),
	)
}

// InfoSection renders the "how it works" walkthrough.
func InfoSection() templ.Component {
	return view.Component(
		h.Section(h.ID("info"), h.Class("info"), h.Data("component", "info"),
			h.H2(g.Text("How it works")),
			h.Ol(h.Class("info__steps"),
				g.Map(steps, func(s string) g.Node { return h.Li(g.Text(s)) }),
			),
		),
	)
}
