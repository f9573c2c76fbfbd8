package view_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joe135730/Concensor-sub001/internal/view"
)

type ctxKey struct{}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestComponent(t *testing.T) {
	c := view.Component(h.P(h.Class("lead"), g.Text("a < b")))

	assert.Equal(t, `<p class="lead">a &lt; b</p>`, render(t, context.Background(), c))
}

func TestComponent_NilNode(t *testing.T) {
	assert.Empty(t, render(t, context.Background(), view.Component(nil)))
}

func TestSlot_WritesContentUnmodified(t *testing.T) {
	markup := `<p id="markup">fish &amp; chips</p>`

	c := view.Func(func(ctx context.Context) g.Node {
		return h.Div(h.Data("slot", "content"), view.Slot(ctx, raw(markup)))
	})

	assert.Equal(t, `<div data-slot="content">`+markup+`</div>`, render(t, context.Background(), c))
}

func TestSlot_PassesContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "from-caller")

	inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v, _ := ctx.Value(ctxKey{}).(string)
		_, err := io.WriteString(w, v)
		return err
	})

	c := view.Func(func(ctx context.Context) g.Node {
		return h.Span(view.Slot(ctx, inner))
	})

	assert.Equal(t, "<span>from-caller</span>", render(t, ctx, c))
}

func TestSlot_Nil(t *testing.T) {
	c := view.Func(func(ctx context.Context) g.Node {
		return h.Div(view.Slot(ctx, nil))
	})

	assert.Equal(t, "<div></div>", render(t, context.Background(), c))
}

func TestSlot_TypedNil(t *testing.T) {
	c := view.Func(func(ctx context.Context) g.Node {
		return h.Div(view.Slot(ctx, templ.ComponentFunc(nil)))
	})

	assert.Equal(t, "<div></div>", render(t, context.Background(), c))
}

func TestSlot_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })

	c := view.Func(func(ctx context.Context) g.Node {
		return h.Div(view.Slot(ctx, failing))
	})

	err := c.Render(context.Background(), io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestGroup_KeepsDeclarationOrder(t *testing.T) {
	c := view.Group(raw("a"), nil, raw("b"), raw("c"))

	assert.Equal(t, "abc", render(t, context.Background(), c))
}

func TestGroup_SkipsTypedNil(t *testing.T) {
	c := view.Group(raw("a"), templ.ComponentFunc(nil), raw("b"))

	assert.Equal(t, "ab", render(t, context.Background(), c))
}

func TestGroup_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })

	var buf bytes.Buffer
	err := view.Group(raw("a"), failing, raw("b")).Render(context.Background(), &buf)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "a", buf.String())
}
