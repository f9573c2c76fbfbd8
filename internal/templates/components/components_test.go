package components_test

import (
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joe135730/Concensor-sub001/internal/static"
	"github.com/joe135730/Concensor-sub001/internal/templates/components"
	"github.com/joe135730/Concensor-sub001/internal/testutil/htmltest"
)

func TestSections_RenderOwnMarker(t *testing.T) {
	tests := []struct {
		name      string
		component templ.Component
		marker    string
	}{
		{"header", components.Header(), "component:header"},
		{"footer", components.Footer(), "component:footer"},
		{"hero", components.HeroSection(), "component:hero"},
		{"features", components.FeaturesSection(), "component:features"},
		{"info", components.InfoSection(), "component:info"},
		{"login form", components.LoginForm(), "component:login-form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := htmltest.Parse(t, htmltest.Render(t, tt.component))

			assert.Equal(t, []string{tt.marker}, htmltest.Children(doc))
		})
	}
}

func TestLoginForm_LinksToGitHubSignIn(t *testing.T) {
	doc := htmltest.Parse(t, htmltest.Render(t, components.LoginForm()))

	var hrefs []string
	for _, a := range htmltest.FindAll(doc, "a") {
		hrefs = append(hrefs, htmltest.Attr(a, "href"))
	}
	assert.Contains(t, hrefs, components.LoginStartPath)
}

func TestHeader_LinksToLogin(t *testing.T) {
	out := htmltest.Render(t, components.Header())

	assert.Contains(t, out, `href="/login"`)
	assert.Contains(t, out, components.Brand)
}

func TestFeaturesSection_ListsFeaturesInOrder(t *testing.T) {
	doc := htmltest.Parse(t, htmltest.Render(t, components.FeaturesSection()))

	headings := htmltest.FindAll(doc, "h3")
	require.Len(t, headings, 3)
	assert.Equal(t, "Proposals, not threads", headings[0].FirstChild.Data)
	assert.Equal(t, "Weighted consent", headings[1].FirstChild.Data)
	assert.Equal(t, "A record of why", headings[2].FirstChild.Data)
}

func TestBackgroundImage_WrapsContent(t *testing.T) {
	inner := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p data-component="inner">x</p>`)
		return err
	})

	out := htmltest.Render(t, components.BackgroundImage(inner))
	doc := htmltest.Parse(t, out)

	bg := htmltest.Find(doc, "component:background-image")
	require.NotNil(t, bg)
	assert.Equal(t, []string{"component:inner"}, htmltest.Children(bg))
	assert.Contains(t, out, `src="`+static.AuthBackground+`"`)
}

func TestSections_AreStable(t *testing.T) {
	first := htmltest.Render(t, components.HeroSection())
	second := htmltest.Render(t, components.HeroSection())

	assert.Equal(t, first, second)
}
