// Package view renders the profile screen with gomponents. Everything here is
// a pure function of a Snapshot.
package view

import (
	"strconv"

	gview "github.com/pyoushmadan10/chatify/internal/view"
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// DefaultAvatar is shown when the user has neither a preview nor a stored picture.
const DefaultAvatar = "/static/avatar.svg"

const (
	// AvatarCardID is the id htmx swaps after an upload.
	AvatarCardID = "avatar-card"
	// UploadPath receives the selected file.
	UploadPath = "/app/profile/avatar"
	// UploadField is the multipart field holding the file.
	UploadField = "avatar"
	// ToastContainerID is the element error toasts are appended to.
	ToastContainerID = gview.ToastContainerID
	// StatusID marks the status line; htmx flags it while a file is in flight.
	StatusID = "avatar-status"
	// UploadLabelID marks the camera button; htmx flags it like the status line.
	UploadLabelID = "avatar-label"
	// AvatarImageID is the img the chosen file is previewed in.
	AvatarImageID = "avatar-image"

	staggeredItems = 4
)

// Snapshot is everything the profile screen displays.
type Snapshot struct {
	AvatarSrc      string
	FullName       string
	Email          string
	MemberSince    string
	AccountStatus  string
	Uploading      bool
	StatusText     string
	UploadDisabled bool
	// Loaded is false for the first render, which plays the entrance animation.
	Loaded bool
}

// Page renders the profile screen body.
func Page(s Snapshot) gomponents.Node {
	container := "max-w-3xl mx-auto p-6"
	if !s.Loaded {
		container += " motion-container"
	}
	return Div(
		Class("min-h-screen pt-20 pb-10"),
		gomponents.If(!s.Loaded, StyleEl(gomponents.Raw(motionCSS(staggeredItems)))),
		Div(
			Class(container),
			Div(
				Class("bg-zinc-800 rounded-3xl p-8 shadow-2xl space-y-10"),
				item(s, 0, "text-center",
					H1(Class("text-4xl font-bold text-zinc-100 mb-2"), gomponents.Text("Profile")),
					P(Class("text-lg text-zinc-400"), gomponents.Text("Your personal information")),
				),
				item(s, 1, "", AvatarCard(s)),
				item(s, 2, "space-y-6",
					LabeledField(IconUser.Node("w-5 h-5"), "Full Name", s.FullName),
					LabeledField(IconMail.Node("w-5 h-5"), "Email Address", s.Email),
				),
				item(s, 3, "mt-8 bg-zinc-700 rounded-2xl p-6 shadow-inner",
					H2(Class("text-2xl font-semibold text-zinc-100 mb-4"), gomponents.Text("Account Information")),
					Div(
						Class("space-y-4 text-sm"),
						AccountInfoRow(IconCalendar.Node("w-5 h-5 text-zinc-400"), "Member Since", s.MemberSince, ""),
						AccountInfoRow(IconShield.Node("w-5 h-5 text-green-400"), "Account Status", s.AccountStatus, "text-green-400"),
					),
				),
			),
		),
	)
}

func item(s Snapshot, index int, class string, children ...gomponents.Node) gomponents.Node {
	if !s.Loaded {
		class += " motion-item-" + strconv.Itoa(index)
	}
	return Div(append([]gomponents.Node{Class(class)}, children...)...)
}

// AvatarCard renders the avatar, the upload control and the status line.
// It is the fragment returned after an upload.
func AvatarCard(s Snapshot) gomponents.Node {
	labelClass := "absolute bottom-2 right-2 bg-zinc-700 hover:bg-zinc-600 p-3 rounded-full cursor-pointer transition-all duration-300 ease-in-out transform hover:scale-110"
	if s.UploadDisabled {
		labelClass += " animate-pulse pointer-events-none"
	}

	return Div(
		ID(AvatarCardID),
		Class("flex flex-col items-center gap-6"),
		Form(
			Class("relative group"),
			hx.Post(UploadPath),
			hx.Encoding("multipart/form-data"),
			hx.Trigger("change"),
			hx.Target("#"+AvatarCardID),
			hx.Swap("outerHTML"),
			hx.Indicator("#"+StatusID+", #"+UploadLabelID),
			gomponents.Attr("hx-disabled-elt", "find input"),
			Div(Class("absolute inset-0 rounded-full bg-gradient-to-r from-blue-500 to-purple-500 animate-pulsating-border")),
			Div(Class("absolute inset-[3px] rounded-full bg-zinc-800")),
			Img(
				ID(AvatarImageID),
				Src(s.AvatarSrc),
				Alt("Profile"),
				Class("relative w-40 h-40 rounded-full object-cover border-4 border-zinc-600 shadow-lg transition-all duration-300 group-hover:border-zinc-500 avatar-pop"),
			),
			Label(
				ID(UploadLabelID),
				For("avatar-upload"),
				Class(labelClass),
				IconCamera.Node("w-6 h-6 text-zinc-300"),
				Input(
					Type("file"),
					ID("avatar-upload"),
					Name(UploadField),
					Class("hidden"),
					Accept("image/*"),
					gomponents.Attr("hx-on:change", previewScript),
					gomponents.If(s.UploadDisabled, Disabled()),
				),
			),
		),
		StatusText(s),
	)
}

// previewScript shows the chosen file before the form is posted. It runs on
// the input, ahead of the form's htmx trigger.
const previewScript = `if (this.files.length) document.getElementById('` + AvatarImageID + `').src = URL.createObjectURL(this.files[0])`

// StatusText renders the line under the avatar. An idle line also carries
// the uploading text as an htmx indicator, shown in place of the idle text
// while the form request is in flight.
func StatusText(s Snapshot) gomponents.Node {
	if s.Uploading {
		return P(
			ID(StatusID),
			Class("text-sm text-zinc-400 animate-pulse"),
			Span(Class("status-uploading"), gomponents.Text(s.StatusText)),
		)
	}
	return P(
		ID(StatusID),
		Class("text-sm text-zinc-400"),
		Span(Class("status-idle"), gomponents.Text(s.StatusText)),
		Span(Class("status-uploading htmx-indicator"), gomponents.Text(UploadingText)),
	)
}

// UploadingText is shown while an upload is running.
const UploadingText = "Uploading..."

// IdleText invites the user to pick a new photo.
const IdleText = "Click the camera icon to update your photo"

// ErrorToast renders an out-of-band fragment appending message to the toast
// container.
func ErrorToast(message gomponents.Node) gomponents.Node {
	return Div(
		hx.SwapOOB("beforeend:#"+ToastContainerID),
		message,
	)
}
