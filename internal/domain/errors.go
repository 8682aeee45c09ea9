package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrNotFound           = errors.New("requested resource not found")

	// ErrInvalidAvatar is returned when a profile picture payload is not a
	// base64 data-URI holding an image.
	ErrInvalidAvatar = errors.New("profile picture must be a base64 encoded image")

	// ErrAvatarTooLarge is returned when a decoded profile picture exceeds the
	// configured size limit.
	ErrAvatarTooLarge = errors.New("profile picture exceeds the size limit")
)
