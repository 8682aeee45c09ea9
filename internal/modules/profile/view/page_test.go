package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
)

func render(t *testing.T, n gomponents.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestAvatarCard(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		html := render(t, AvatarCard(Snapshot{AvatarSrc: "X", StatusText: IdleText}))

		assert.Contains(t, html, `src="X"`)
		assert.Contains(t, html, IdleText)
		assert.Contains(t, html, `accept="image/*"`)
		assert.Contains(t, html, `hx-encoding="multipart/form-data"`)
		assert.NotContains(t, html, " disabled")
		assert.NotContains(t, html, "pointer-events-none")
	})

	t.Run("idle card carries the in-flight state", func(t *testing.T) {
		html := render(t, AvatarCard(Snapshot{AvatarSrc: "X", StatusText: IdleText}))

		assert.Contains(t, html, `<span class="status-idle">`+IdleText+`</span>`)
		assert.Contains(t, html, `<span class="status-uploading htmx-indicator">`+UploadingText+`</span>`)
		assert.Contains(t, html, `hx-indicator="#`+StatusID+`, #`+UploadLabelID+`"`)
		assert.Contains(t, html, `id="`+UploadLabelID+`"`)
	})

	t.Run("chosen file is previewed before posting", func(t *testing.T) {
		html := render(t, AvatarCard(Snapshot{AvatarSrc: "X", StatusText: IdleText}))

		assert.Contains(t, html, `hx-on:change="`)
		assert.Contains(t, html, "URL.createObjectURL(this.files[0])")
		assert.Contains(t, html, `id="`+AvatarImageID+`"`)
	})

	t.Run("uploading disables the control", func(t *testing.T) {
		html := render(t, AvatarCard(Snapshot{AvatarSrc: "X", Uploading: true, UploadDisabled: true, StatusText: UploadingText}))

		assert.Contains(t, html, `<span class="status-uploading">`+UploadingText+`</span>`)
		assert.NotContains(t, html, IdleText)
		assert.Contains(t, html, " disabled")
		assert.Contains(t, html, "pointer-events-none")
	})
}

func TestLabeledField(t *testing.T) {
	html := render(t, LabeledField(IconMail.Node("w-5 h-5"), "Email Address", "ada@example.com"))

	assert.Contains(t, html, "Email Address")
	assert.Contains(t, html, "ada@example.com")
	assert.Contains(t, html, "<svg")
}

func TestAccountInfoRow(t *testing.T) {
	assert.Contains(t, render(t, AccountInfoRow(nil, "Member Since", "2023-05-01", "")), `class="font-medium text-zinc-100"`)
	assert.Contains(t, render(t, AccountInfoRow(nil, "Account Status", "Active", "text-green-400")), `class="font-medium text-green-400"`)
}

func TestPage_Motion(t *testing.T) {
	first := render(t, Page(Snapshot{FullName: "Ada"}))
	assert.Contains(t, first, "@keyframes profile-container-in")
	assert.Contains(t, first, "motion-item-3")

	later := render(t, Page(Snapshot{FullName: "Ada", Loaded: true}))
	assert.False(t, strings.Contains(later, "motion-"), "loaded screens do not replay the entrance")
}

func TestSpring_Settle(t *testing.T) {
	assert.Equal(t, int64(800), ItemVariants.Transition.Settle().Milliseconds())
	assert.Zero(t, Spring{}.Settle())
}
