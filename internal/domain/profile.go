package domain

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	// Register the safepath validator to prevent directory traversal attacks.
	_ = validatorInstance.RegisterValidation("safepath", validateSafePath)
}

// validateSafePath ensures the path doesn't contain any directory traversal attempts.
func validateSafePath(fl validator.FieldLevel) bool {
	path := fl.Field().String()

	if strings.Contains(path, "..") ||
		strings.Contains(path, "~") ||
		strings.HasPrefix(path, "/") ||
		strings.Contains(path, "\\") {
		return false
	}

	// Catches subtler cases like "avatars/./../file".
	return path == filepath.Clean(path)
}

// ProfileUpdate is the partial profile sent by the profile screen.
// ProfilePic carries the selected image as a base64 data-URI.
type ProfileUpdate struct {
	ProfilePic string `json:"profilePic" validate:"required,datauri"`
}

// Validate runs the struct tag validations.
func (u ProfileUpdate) Validate() error {
	return validatorInstance.Struct(u)
}

// Avatar describes an image hosted for a user's profile picture.
type Avatar struct {
	UserID      string `validate:"required"`
	Name        string `validate:"required,min=1,max=255"`
	MIMEType    string `validate:"required,startswith=image/"`
	Size        int64  `validate:"gt=0"`
	StoragePath string `validate:"required,safepath"`
}

// Validate runs validation checks on the Avatar struct using the defined tags.
func (a *Avatar) Validate() error {
	return validatorInstance.Struct(a)
}
