package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/domain"
	"github.com/pyoushmadan10/chatify/internal/view"
)

const (
	UserContextKey = "user"

	// AuthCookieName holds the session token issued at sign in.
	AuthCookieName = "auth_token"
	// LoginPath is where unauthenticated requests are sent.
	LoginPath = "/auth/login"

	// SessionExpiredMessage is flashed when a stale token is rejected.
	SessionExpiredMessage = "Your session has expired. Please sign in again."
)

// Auth creates a middleware that protects routes that require authentication.
func Auth(auth domain.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 1. Get the token from the cookie.
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			// 2. Validate the token and get the user.
			user, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil || user == nil {
				FromContext(c.Request().Context()).Debug("rejected session token", "error", err)
				// Clear the invalid cookie so the browser stops sending it.
				c.SetCookie(&http.Cookie{
					Name:   AuthCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				view.SetFlashError(c, SessionExpiredMessage)
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}

			// 3. Expose the user and tag every later log line with it.
			c.Set(UserContextKey, user)
			if user.ID != nil {
				setLogger(c, FromContext(c.Request().Context()).With("user_id", user.ID.String()))
			}

			return next(c)
		}
	}
}
