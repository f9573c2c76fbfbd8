// Package view bridges gomponents node trees and templ components.
//
// Markup is authored as gomponents nodes; everything that crosses a package
// boundary (sections, layouts, pages) is a templ.Component so callers only
// ever see one renderable type.
package view

import (
	"context"
	"io"
	"reflect"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a static node tree.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Func adapts a node tree that needs the render context, usually because it
// embeds other components through Slot.
func Func(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		node := build(ctx)
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Slot places c inside a node tree. The component writes straight through to
// the output, so its markup is never re-parsed or escaped. A nil component,
// typed or not, renders nothing.
func Slot(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if isNil(c) {
			return nil
		}
		return c.Render(ctx, w)
	})
}

// Group renders components one after another in declaration order and stops
// at the first error. Nil components are skipped.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if isNil(c) {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// isNil reports whether c is nil or an interface holding a nil func or
// pointer, such as templ.ComponentFunc(nil).
func isNil(c templ.Component) bool {
	if c == nil {
		return true
	}
	switch v := reflect.ValueOf(c); v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
