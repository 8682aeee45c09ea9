package authstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingUpdater holds every call until release is closed.
type blockingUpdater struct {
	started chan struct{}
	release chan struct{}
	err     error
	calls   int
	mu      sync.Mutex
}

func newBlockingUpdater() *blockingUpdater {
	return &blockingUpdater{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (u *blockingUpdater) UpdateProfile(ctx context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	u.started <- struct{}{}
	<-u.release
	if u.err != nil {
		return nil, u.err
	}
	updated := *user
	updated.ProfilePic = "/app/profile/avatars/x/new.png"
	return &updated, nil
}

func TestStore_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	update := domain.ProfileUpdate{ProfilePic: "data:image/png;base64,AAAA"}

	t.Run("flag is set while the update runs and the user is replaced", func(t *testing.T) {
		user := testutils.NewUser("Ada", "ada@example.com")
		up := newBlockingUpdater()
		s := New(user, up, nil)
		assert.False(t, s.IsUpdatingProfile())

		done := make(chan error, 1)
		go func() { done <- s.UpdateProfile(ctx, update) }()

		<-up.started
		assert.True(t, s.IsUpdatingProfile())
		close(up.release)

		require.NoError(t, <-done)
		assert.False(t, s.IsUpdatingProfile())
		assert.Equal(t, "/app/profile/avatars/x/new.png", s.AuthUser().ProfilePic)
	})

	t.Run("overlapping updates keep the flag until all finish", func(t *testing.T) {
		up := newBlockingUpdater()
		s := New(testutils.NewUser("Ada", "ada@example.com"), up, nil)

		done := make(chan error, 2)
		go func() { done <- s.UpdateProfile(ctx, update) }()
		go func() { done <- s.UpdateProfile(ctx, update) }()
		<-up.started
		<-up.started

		close(up.release)
		<-done
		<-done
		assert.False(t, s.IsUpdatingProfile())
		assert.Equal(t, 2, up.calls)
	})

	t.Run("errors are returned and the user is kept", func(t *testing.T) {
		user := testutils.NewUser("Ada", "ada@example.com")
		up := newBlockingUpdater()
		up.err = errors.New("boom")
		close(up.release)
		s := New(user, up, nil)

		err := s.UpdateProfile(ctx, update)
		assert.EqualError(t, err, "boom")
		assert.Same(t, user, s.AuthUser())
		assert.False(t, s.IsUpdatingProfile())
	})
}

func TestStore_RefreshAndApply(t *testing.T) {
	user := testutils.NewUser("Ada", "ada@example.com")
	other := testutils.NewUser("Grace", "grace@example.com")
	s := New(user, nil, nil)

	s.Refresh(other)
	assert.Same(t, user, s.AuthUser())

	s.ApplyProfilePic(other.ID.String(), "/other.png")
	assert.Empty(t, s.AuthUser().ProfilePic)

	s.ApplyProfilePic(user.ID.String(), "/mine.png")
	assert.Equal(t, "/mine.png", s.AuthUser().ProfilePic)
	assert.Empty(t, user.ProfilePic, "the original record is not mutated")

	fresh := *user
	fresh.FullName = "Ada King"
	s.Refresh(&fresh)
	assert.Equal(t, "Ada King", s.AuthUser().FullName)
}
