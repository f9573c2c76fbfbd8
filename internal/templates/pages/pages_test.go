package pages_test

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/templates/pages"
	"github.com/joe135730/Concensor-sub001/internal/testutil/htmltest"
)

func stylesheets(t *testing.T, out string) []string {
	t.Helper()

	var hrefs []string
	for _, l := range htmltest.FindAll(htmltest.Parse(t, out), "link") {
		if htmltest.Attr(l, "rel") == "stylesheet" {
			hrefs = append(hrefs, htmltest.Attr(l, "href"))
		}
	}
	return hrefs
}

func TestHome_SectionsInsideMainLayout(t *testing.T) {
	doc := htmltest.Parse(t, htmltest.Render(t, pages.Home()))

	frame := htmltest.Find(doc, "layout:main")
	require.NotNil(t, frame)
	assert.Equal(t, []string{"component:header", "slot:content", "component:footer"}, htmltest.Children(frame))

	slot := htmltest.Find(frame, "slot:content")
	require.NotNil(t, slot)
	assert.Equal(t, []string{"component:hero", "component:features", "component:info"}, htmltest.Children(slot))
}

func TestLogin_FormInsideAuthFrame(t *testing.T) {
	doc := htmltest.Parse(t, htmltest.Render(t, pages.Login()))

	bg := htmltest.Find(doc, "component:background-image")
	require.NotNil(t, bg)
	assert.Equal(t, []string{"component:header", "slot:content", "component:footer"}, htmltest.Children(bg))

	slot := htmltest.Find(bg, "slot:content")
	require.NotNil(t, slot)
	assert.Equal(t, []string{"component:login-form"}, htmltest.Children(slot))
}

func TestPages_Stylesheets(t *testing.T) {
	assert.Equal(t,
		[]string{static.BaseStylesheet, static.HomeStylesheet},
		stylesheets(t, htmltest.Render(t, pages.Home())))
	assert.Equal(t,
		[]string{static.BaseStylesheet, static.LoginStylesheet},
		stylesheets(t, htmltest.Render(t, pages.Login())))
}

func TestPages_RenderIdentically(t *testing.T) {
	tests := []struct {
		name string
		page func() templ.Component
	}{
		{"home", pages.Home},
		{"login", pages.Login},
		{"not found", pages.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := htmltest.Render(t, tt.page())
			second := htmltest.Render(t, tt.page())
			reused := tt.page()

			assert.Equal(t, first, second)
			assert.Equal(t, htmltest.Render(t, reused), htmltest.Render(t, reused))
		})
	}
}

func TestNotFound_UsesMainLayout(t *testing.T) {
	doc := htmltest.Parse(t, htmltest.Render(t, pages.NotFound()))

	slot := htmltest.Find(doc, "slot:content")
	require.NotNil(t, slot)
	assert.Equal(t, []string{"component:not-found"}, htmltest.Children(slot))
}
