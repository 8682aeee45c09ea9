// Package profile persists profile changes: it hosts uploaded avatar images,
// points the user record at them and announces the change on the event bus.
package profile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pyoushmadan10/chatify/internal/datauri"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/pubsub"
	"github.com/pyoushmadan10/chatify/internal/storage"
)

const (
	// AvatarRoute is the URL prefix hosted avatars are served from.
	AvatarRoute = "/app/profile/avatars"

	avatarDir = "avatars"
)

// Service implements profile updates.
type Service struct {
	repo     domain.UserRepository
	store    storage.Store
	pub      pubsub.Publisher
	maxBytes int64
	logger   *slog.Logger
}

// NewService creates a new profile service. maxBytes limits the decoded
// avatar size; zero or less disables the limit.
func NewService(repo domain.UserRepository, store storage.Store, pub pubsub.Publisher, maxBytes int64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		store:    store,
		pub:      pub,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// UpdateProfile applies update to user and returns the stored record.
func (s *Service) UpdateProfile(ctx context.Context, user *domain.User, update domain.ProfileUpdate) (*domain.User, error) {
	if user == nil || user.ID == nil {
		return nil, domain.ErrNotFound
	}
	userID := user.ID.String()

	// 1. Decode and check the image.
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAvatar, err)
	}
	_, data, err := datauri.Parse(update.ProfilePic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAvatar, err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", domain.ErrAvatarTooLarge, len(data), s.maxBytes)
	}
	// The declared type is not trusted.
	detected := mimetype.Detect(data)
	mimeType, _, _ := strings.Cut(detected.String(), ";")

	// 2. Host it under a unique name to prevent collisions.
	owner := PathKey(userID)
	name := uuid.NewString() + detected.Extension()
	avatar := domain.Avatar{
		UserID:      userID,
		Name:        name,
		MIMEType:    mimeType,
		Size:        int64(len(data)),
		StoragePath: path.Join(avatarDir, owner, name),
	}
	if err := avatar.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAvatar, err)
	}
	if _, err := s.store.Save(ctx, avatar.StoragePath, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	// 3. Point the user record at the hosted file.
	url := AvatarURL(owner, name)
	updated, err := s.repo.UpdateProfilePic(ctx, userID, url)
	if err != nil {
		if delErr := s.store.Delete(ctx, avatar.StoragePath); delErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned avatar", "path", avatar.StoragePath, "error", delErr)
		}
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}

	s.logger.InfoContext(ctx, "profile picture updated", "user_id", userID, "mime", mimeType, "size", avatar.Size)

	// 4. Announce it. The update already succeeded, so a failed publish is only logged.
	if s.pub != nil {
		payload := Updated{UserID: userID, ProfilePic: url}
		if err := pubsub.Publish(ctx, s.pub, ProfileUpdated, userID, payload); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish profile update", "user_id", userID, "error", err)
		}
	}
	return updated, nil
}

// OpenAvatar returns the content and MIME type of a hosted avatar.
func (s *Service) OpenAvatar(ctx context.Context, owner, name string) ([]byte, string, error) {
	avatar := domain.Avatar{
		UserID:      owner,
		Name:        name,
		MIMEType:    "image/*",
		Size:        1,
		StoragePath: path.Join(avatarDir, owner, name),
	}
	if strings.ContainsAny(owner+name, "/\\") || avatar.Validate() != nil {
		return nil, "", domain.ErrNotFound
	}

	rc, err := s.store.Open(ctx, avatar.StoragePath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read avatar: %w", err)
	}
	mimeType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return data, mimeType, nil
}

// PathKey turns a record ID such as "user:abc" into a single path segment.
func PathKey(userID string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, userID)
}

// AvatarURL is the public URL of a hosted avatar.
func AvatarURL(owner, name string) string {
	return AvatarRoute + "/" + owner + "/" + name
}
