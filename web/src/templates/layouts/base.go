package layouts

import (
	"github.com/pyoushmadan10/chatify/internal/view"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the application shell: document head, htmx and
// a toast container seeded with the request's flash messages.
func Base(title string, flashes view.FlashData, content gomponents.Node) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    PageTitle(title),
		Language: "en",
		Head: []gomponents.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Script(Src("https://cdn.tailwindcss.com")),
			Script(Src(htmxSrc)),
			Link(Rel("stylesheet"), Href("/static/app.css")),
		},
		Body: []gomponents.Node{
			Class("bg-zinc-900 text-zinc-100"),
			Main(content),
			Div(
				ID(view.ToastContainerID),
				Class("fixed top-4 right-4 z-50 flex flex-col gap-2"),
				gomponents.Map(flashes.Success, func(msg string) gomponents.Node {
					return view.TemplNode(view.Toast(view.ToastSuccess, msg))
				}),
				gomponents.Map(flashes.Error, func(msg string) gomponents.Node {
					return view.TemplNode(view.Toast(view.ToastError, msg))
				}),
			),
		},
	})
}
