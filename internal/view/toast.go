package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// ToastContainerID is the element in the base layout that toasts stack in.
const ToastContainerID = "toasts"

// ToastKind selects the styling of a toast.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

var toastClasses = map[ToastKind]string{
	ToastSuccess: "bg-green-600 text-white",
	ToastError:   "bg-red-600 text-white",
}

// Toast renders a dismissable notification.
func Toast(kind ToastKind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class, ok := toastClasses[kind]
		if !ok {
			class = toastClasses[ToastError]
		}
		_, err := io.WriteString(w, `<div role="alert" class="toast px-4 py-3 rounded-lg shadow-lg `+class+
			`" onclick="this.remove()">`+templ.EscapeString(message)+`</div>`)
		return err
	})
}

// ToastOOB renders a toast that htmx appends to the toast container out of
// band, leaving the request's target alone.
func ToastOOB(kind ToastKind, message string) gomponents.Node {
	return gomponents.El("div",
		gomponents.Attr("hx-swap-oob", "beforeend:#"+ToastContainerID),
		TemplNode(Toast(kind, message)),
	)
}
