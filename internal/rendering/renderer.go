// Package rendering lets echo handlers return templ components and gomponents
// nodes through c.Render.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/view"
	"maragu.dev/gomponents"
)

// Renderer is an echo.Renderer that can also render outside a request.
type Renderer interface {
	echo.Renderer
	RenderComponent(ctx context.Context, component any) ([]byte, error)
}

// UniversalRenderer accepts templ.Component and gomponents.Node values.
// The template name passed to c.Render is ignored.
type UniversalRenderer struct{}

var _ Renderer = (*UniversalRenderer)(nil)

func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// Render writes data as HTML.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	comp, err := asComponent(data)
	if err != nil {
		return err
	}
	if h := c.Response().Header(); h.Get(echo.HeaderContentType) == "" {
		h.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return comp.Render(c.Request().Context(), w)
}

// RenderComponent renders component to a byte slice.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	comp, err := asComponent(component)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render %T: %w", component, err)
	}
	return buf.Bytes(), nil
}

func asComponent(data any) (templ.Component, error) {
	switch c := data.(type) {
	case templ.Component:
		return c, nil
	case gomponents.Node:
		return view.NodeComponent(c), nil
	default:
		return nil, fmt.Errorf("cannot render %T: want templ.Component or gomponents.Node", data)
	}
}
