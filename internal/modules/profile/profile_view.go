package profile

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/modules/profile/view"
)

// AccountStatus is shown for every signed-in account.
const AccountStatus = "Active"

// Session is the signed-in user's store as seen by the profile screen.
type Session interface {
	AuthUser() *domain.User
	IsUpdatingProfile() bool
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error
}

// ProfileView holds the state of one profile screen.
type ProfileView struct {
	store  Session
	reader *filereader.Reader

	mu      sync.Mutex
	preview string
	loaded  bool
}

// NewProfileView creates a view reading its user from store.
func NewProfileView(store Session, reader *filereader.Reader) *ProfileView {
	if reader == nil {
		reader = filereader.New(nil)
	}
	return &ProfileView{store: store, reader: reader}
}

// Mount marks the screen as shown. Only the first call has an effect.
func (v *ProfileView) Mount() {
	v.mu.Lock()
	v.loaded = true
	v.mu.Unlock()
}

// HandleAvatarSelected reads file into a data-URI, shows it as the avatar
// right away and sends it to the store. A nil file means the picker was
// cancelled. Read failures are ignored; store errors are returned as is.
func (v *ProfileView) HandleAvatarSelected(ctx context.Context, file filereader.Source) error {
	if file == nil {
		return nil
	}

	res := <-v.reader.ReadAsDataURL(file)
	if res.Err != nil {
		slog.DebugContext(ctx, "ignoring unreadable avatar", "file", file.Name(), "error", res.Err)
		return nil
	}

	v.mu.Lock()
	v.preview = res.URI
	v.mu.Unlock()

	return v.store.UpdateProfile(ctx, domain.ProfileUpdate{ProfilePic: res.URI})
}

// Preview returns the data-URI of the last selected file, if any.
func (v *ProfileView) Preview() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preview
}

// Snapshot returns what the screen currently displays.
func (v *ProfileView) Snapshot() view.Snapshot {
	v.mu.Lock()
	preview, loaded := v.preview, v.loaded
	v.mu.Unlock()

	user := v.store.AuthUser()
	uploading := v.store.IsUpdatingProfile()

	s := view.Snapshot{
		AvatarSrc:      AvatarSrc(preview, user),
		AccountStatus:  AccountStatus,
		Uploading:      uploading,
		StatusText:     view.IdleText,
		UploadDisabled: uploading,
		Loaded:         loaded,
	}
	if uploading {
		s.StatusText = view.UploadingText
	}
	if user != nil {
		s.FullName = user.FullName
		s.Email = user.Email
		s.MemberSince = MemberSince(user.CreatedAt)
	}
	return s
}

// AvatarSrc picks the avatar to display: the preview, then the stored
// picture, then the placeholder.
func AvatarSrc(preview string, user *domain.User) string {
	switch {
	case preview != "":
		return preview
	case user != nil && user.ProfilePic != "":
		return user.ProfilePic
	default:
		return view.DefaultAvatar
	}
}

// MemberSince returns the date part of an ISO timestamp.
func MemberSince(createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return date
}
