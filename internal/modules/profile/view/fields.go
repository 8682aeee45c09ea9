package view

import (
	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const defaultValueClass = "text-zinc-100"

// LabeledField renders a labelled, boxed value such as the user's name.
func LabeledField(icon gomponents.Node, label, value string) gomponents.Node {
	return Div(
		Class("space-y-2 transition-transform hover:scale-[1.02]"),
		Div(
			Class("text-sm text-zinc-400 flex items-center gap-2"),
			icon,
			gomponents.Text(label),
		),
		P(Class("px-4 py-3 bg-zinc-700 rounded-lg text-zinc-100"), gomponents.Text(value)),
	)
}

// AccountInfoRow renders one label/value row of the account information
// panel. An empty valueClass uses the default text color.
func AccountInfoRow(icon gomponents.Node, label, value, valueClass string) gomponents.Node {
	if valueClass == "" {
		valueClass = defaultValueClass
	}
	return Div(
		Class("flex items-center justify-between py-2 border-b border-zinc-600 transition-transform hover:scale-[1.02] hover:translate-x-1"),
		Span(Class("flex items-center gap-2 text-zinc-300"), icon, gomponents.Text(label)),
		Span(Class("font-medium "+valueClass), gomponents.Text(value)),
	)
}
