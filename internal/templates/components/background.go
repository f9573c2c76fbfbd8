package components

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/view"
)

// BackgroundImage renders a full-bleed decorative image behind content.
func BackgroundImage(content templ.Component) templ.Component {
	return view.Func(func(ctx context.Context) g.Node {
		return h.Div(h.Class("background"), h.Data("component", "background-image"),
			h.Img(h.Class("background__image"), h.Src(static.AuthBackground), h.Alt(""), h.Aria("hidden", "true")),
			h.Div(h.Class("background__content"),
				view.Slot(ctx, content),
			),
		)
	})
}
