package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplNode embeds a templ component in a gomponents tree. gomponents does
// not pass a context, so the component renders with context.Background.
func TemplNode(c templ.Component) gomponents.Node {
	return gomponents.NodeFunc(func(w io.Writer) error {
		return c.Render(context.Background(), w)
	})
}

// NodeComponent wraps a gomponents node as a templ component.
func NodeComponent(n gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}
