package profile

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/authstore"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/filereader"
	"github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/modules/profile/view"
	profilesvc "github.com/pyoushmadan10/chatify/internal/profile"
	gview "github.com/pyoushmadan10/chatify/internal/view"
	"github.com/pyoushmadan10/chatify/web/src/templates/layouts"
	"maragu.dev/gomponents"
)

const (
	viewSessionName = "profile-view"
	viewIDKey       = "id"
)

// Handler serves the profile screen.
type Handler struct {
	views   *Views
	service *profilesvc.Service
	reader  *filereader.Reader
}

// NewHandler creates a new Handler.
func NewHandler(views *Views, service *profilesvc.Service, reader *filereader.Reader) *Handler {
	return &Handler{
		views:   views,
		service: service,
		reader:  reader,
	}
}

// Get renders the profile page.
func (h *Handler) Get(c echo.Context) error {
	user, err := contextUser(c)
	if err != nil {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	v, store := h.viewFor(c, user)
	store.Refresh(user)

	// The first render plays the entrance animation.
	snapshot := v.Snapshot()
	v.Mount()

	page := layouts.Base("Profile", gview.GetFlashData(c), view.Page(snapshot))
	return c.Render(http.StatusOK, "", page)
}

// UploadAvatar receives the selected image and returns the refreshed avatar card.
func (h *Handler) UploadAvatar(c echo.Context) error {
	user, err := contextUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	logger := middleware.FromContext(c.Request().Context())

	v, store := h.viewFor(c, user)
	store.Refresh(user)

	var src filereader.Source
	fh, err := c.FormFile(view.UploadField)
	switch {
	case err == nil:
		src = filereader.FromMultipart(fh)
	case errors.Is(err, http.ErrMissingFile):
		// Picker was cancelled.
	default:
		logger.Debug("could not read upload form", "error", err)
	}

	uploadErr := v.HandleAvatarSelected(c.Request().Context(), src)

	nodes := gomponents.Group{view.AvatarCard(v.Snapshot())}
	if uploadErr != nil {
		logger.Warn("avatar upload failed", "user_id", user.ID.String(), "error", uploadErr)
		toast := gview.Toast(gview.ToastError, uploadErrorMessage(uploadErr))
		nodes = append(nodes, view.ErrorToast(gview.TemplNode(toast)))
	}

	// htmx only swaps 2xx responses, so failures are reported in the toast.
	return c.Render(http.StatusOK, "", nodes)
}

// Avatar streams a hosted avatar image.
func (h *Handler) Avatar(c echo.Context) error {
	data, mimeType, err := h.service.OpenAvatar(c.Request().Context(), c.Param("user"), c.Param("name"))
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "avatar not found")
	}
	if err != nil {
		return err
	}
	// Names are never reused, so the content never changes.
	c.Response().Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	return c.Blob(http.StatusOK, mimeType, data)
}

// viewFor returns the screen bound to this browser session, creating one if
// the session has none or it belongs to someone else.
func (h *Handler) viewFor(c echo.Context, user *domain.User) (*ProfileView, *authstore.Store) {
	logger := middleware.FromContext(c.Request().Context())

	sess, sessErr := session.Get(viewSessionName, c)
	if sessErr == nil {
		if id, ok := sess.Values[viewIDKey].(string); ok {
			if v, store, ok := h.views.Get(id); ok && sameUser(store.AuthUser(), user) {
				return v, store
			}
			h.views.Remove(id)
		}
	}

	store := authstore.New(user, h.service, logger)
	v := NewProfileView(store, h.reader)
	id := h.views.Add(v, store)

	if sessErr != nil {
		logger.Debug("profile view is not bound to a session", "error", sessErr)
		return v, store
	}
	sess.Values[viewIDKey] = id
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		logger.Warn("failed to save profile view session", "error", err)
	}
	return v, store
}

func contextUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil || user.ID == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

func sameUser(a, b *domain.User) bool {
	return a != nil && b != nil && a.ID != nil && b.ID != nil && a.ID.String() == b.ID.String()
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAvatar):
		return "Please choose an image file."
	case errors.Is(err, domain.ErrAvatarTooLarge):
		return "That image is too large."
	default:
		return "Could not update your profile picture. Please try again."
	}
}
