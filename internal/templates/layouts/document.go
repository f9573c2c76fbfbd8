package layouts

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/view"
)

// Head describes the document head of a page.
type Head struct {
	Title       string
	Description string
	Stylesheets []string
}

// Document renders the HTML5 document shell with body as the content of
// <body>.
func Document(head Head, body templ.Component) templ.Component {
	return view.Func(func(ctx context.Context) g.Node {
		return gc.HTML5(gc.HTML5Props{
			Title:       head.Title,
			Description: head.Description,
			Language:    "en",
			Head: []g.Node{
				g.Map(head.Stylesheets, func(href string) g.Node {
					return h.Link(h.Rel("stylesheet"), h.Href(href))
				}),
			},
			Body: []g.Node{
				view.Slot(ctx, body),
			},
		})
	})
}
