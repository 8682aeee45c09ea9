package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/domain"
	appmiddleware "github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/module"
	"github.com/pyoushmadan10/chatify/internal/registry"
	"github.com/pyoushmadan10/chatify/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

type staticAuth struct{ user *domain.User }

func (a staticAuth) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "valid" {
		return a.user, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// pingModule answers GET /app/ping with the signed-in user's email.
type pingModule struct {
	module.BaseModule
	booted, stopped bool
}

func (m *pingModule) Name() string { return "ping" }

func (m *pingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	m.booted = true
	g.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(appmiddleware.UserContextKey).(*domain.User).Email)
	})
	return nil
}

func (m *pingModule) Shutdown(ctx context.Context) error {
	m.stopped = true
	return nil
}

func newTestServer(t *testing.T) (*Server, *pingModule) {
	t.Helper()
	cfg := &config.Config{SessionSecret: "a-very-secret-key-for-testing-!", AvatarMaxBytes: 1 << 20}
	s, err := New(Dependencies{
		Config:        cfg,
		Renderer:      rendering.NewUniversalRenderer(),
		Authenticator: staticAuth{user: &domain.User{Email: "ada@example.com"}},
	})
	require.NoError(t, err)
	s.RegisterRoutes()

	m := &pingModule{}
	require.NoError(t, s.InitModules(context.Background(), []module.Module{m}, registry.New(cfg)))
	return s, m
}

func TestServer_Routes(t *testing.T) {
	s, m := newTestServer(t)
	require.True(t, m.booted)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("default avatar is served", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/avatar.svg", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<svg")
	})

	t.Run("module routes require a session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/ping", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, appmiddleware.LoginPath, rec.Header().Get("Location"))
	})

	t.Run("module routes see the signed-in user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/app/ping", nil)
		req.AddCookie(&http.Cookie{Name: appmiddleware.AuthCookieName, Value: "valid"})
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ada@example.com", rec.Body.String())
	})

	t.Run("shutdown stops modules", func(t *testing.T) {
		require.NoError(t, s.Shutdown(context.Background()))
		assert.True(t, m.stopped)
	})
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Dependencies{})
	assert.Error(t, err)

	_, err = New(Dependencies{Config: &config.Config{}})
	assert.Error(t, err)
}

func TestBodyLimit(t *testing.T) {
	assert.Equal(t, "7M", bodyLimit(5<<20))
	assert.Equal(t, "32M", bodyLimit(0))
}

func TestHTTPErrorHandler_HtmxToast(t *testing.T) {
	s, _ := newTestServer(t)
	s.E.POST("/upload", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, appmiddleware.RateLimiter(1))

	post := func(size int, htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, size)))
		req.RemoteAddr = "192.0.2.10:1234"
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		return rec
	}

	t.Run("oversized upload", func(t *testing.T) {
		rec := post(4<<20, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), `hx-swap-oob="beforeend:#toasts"`)
		assert.Contains(t, rec.Body.String(), TooLargeMessage)

		plain := post(4<<20, false)
		assert.Equal(t, http.StatusRequestEntityTooLarge, plain.Code)
	})

	t.Run("rate limited upload", func(t *testing.T) {
		require.Equal(t, http.StatusOK, post(16, true).Code)

		rec := post(16, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))
		assert.Contains(t, rec.Body.String(), "Too many requests")

		assert.Equal(t, http.StatusTooManyRequests, post(16, false).Code)
	})
}
