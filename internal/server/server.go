package server

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/domain"
	appmiddleware "github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/module"
	"github.com/pyoushmadan10/chatify/web"
)

// Dependencies holds everything the HTTP server needs from the application.
type Dependencies struct {
	Config        config.Provider
	Renderer      echo.Renderer
	Authenticator domain.Authenticator
	// Echo is optional; tests may pass their own instance.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E             *echo.Echo
	Cfg           config.Provider
	authenticator domain.Authenticator
	modules       []module.Module
}

// New creates a new Server instance with the global middleware stack.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Authenticator == nil {
		return nil, errors.New("server: authenticator is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// Uploads carry at most one avatar plus the multipart envelope.
	e.Use(middleware.BodyLimit(bodyLimit(deps.Config.GetAvatarMaxBytes())))

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:             e,
		Cfg:           deps.Config,
		authenticator: deps.Authenticator,
	}, nil
}

// staticFS returns the embedded assets below web/static.
func staticFS() fs.FS {
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// bodyLimit renders an echo body limit a little above the avatar size.
func bodyLimit(maxAvatar int64) string {
	if maxAvatar <= 0 {
		return "32M"
	}
	mb := maxAvatar>>20 + 2
	return strconv.FormatInt(mb, 10) + "M"
}
