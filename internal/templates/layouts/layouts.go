// Package layouts renders the fixed frames pages are placed in. A layout
// knows nothing about its content: it receives a single component and
// renders it, unmodified, as the only child of its content slot.
package layouts

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/templates/components"
	"github.com/joe135730/Concensor-sub001/internal/view"
)

// Auth frames sign-in pages: header, content and footer over the
// background image.
func Auth(content templ.Component) templ.Component {
	return components.BackgroundImage(view.Func(func(ctx context.Context) g.Node {
		return g.Group{
			view.Slot(ctx, components.Header()),
			h.Div(h.Class("auth__content"), h.Data("slot", "content"),
				view.Slot(ctx, content),
			),
			view.Slot(ctx, components.Footer()),
		}
	}))
}

// Main frames the marketing pages.
func Main(content templ.Component) templ.Component {
	return view.Func(func(ctx context.Context) g.Node {
		return h.Div(h.Class("layout layout--main"), h.Data("layout", "main"),
			view.Slot(ctx, components.Header()),
			h.Main(h.Class("layout__content"), h.Data("slot", "content"),
				view.Slot(ctx, content),
			),
			view.Slot(ctx, components.Footer()),
		)
	})
}
