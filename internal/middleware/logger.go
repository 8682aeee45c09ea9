package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type loggerKey struct{}

// Logger attaches a request-scoped logger carrying the request id. It must
// run after echo's RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		setLogger(c, slog.Default().With("request_id", reqID))
		return next(c)
	}
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// setLogger replaces the request logger for the rest of the chain.
func setLogger(c echo.Context, l *slog.Logger) {
	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), loggerKey{}, l)))
}
