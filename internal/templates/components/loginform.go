package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/view"
)

// LoginStartPath starts the GitHub sign-in flow.
const LoginStartPath = "/auth/github"

// LoginForm renders the sign-in card.
func LoginForm() templ.Component {
	return view.Component(
		h.Div(h.Class("login-form"), h.Data("component", "login-form"),
			h.H1(h.Class("login-form__title"), g.Text("Sign in to "+Brand)),
			h.P(h.Class("login-form__subtitle"), g.Text("Use your GitHub account to continue.")),
			h.A(h.Class("login-form__github"), h.Href(LoginStartPath), g.Text("Continue with GitHub")),
			h.P(h.Class("login-form__terms"),
				g.Text("By continuing you agree to the "),
				h.A(h.Href("/terms"), g.Text("terms of service")),
				g.Text("."),
			),
		),
	)
}
