package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/pyoushmadan10/chatify/internal/middleware"
	"github.com/pyoushmadan10/chatify/internal/view"
)

// TooLargeMessage is shown when a request body exceeds the server's limit.
const TooLargeMessage = "That file is too large."

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace and hides their details from the client.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Internal != nil {
				appmiddleware.FromContext(c.Request().Context()).Warn("request failed", "status", he.Code, "error", he.Internal)
			}
			_ = respond(c, he.Code, he.Message)
			return
		}

		appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		_ = respond(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func respond(c echo.Context, code int, message any) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	if c.Request().Header.Get("HX-Request") == "true" {
		return respondToast(c, code, message)
	}
	return c.JSON(code, map[string]any{"message": message})
}

// respondToast reports an error to htmx as an out-of-band toast. htmx ignores
// non-2xx bodies, so the status is 200 and HX-Reswap keeps the target as is.
func respondToast(c echo.Context, code int, message any) error {
	text := fmt.Sprint(message)
	switch {
	case code == http.StatusRequestEntityTooLarge:
		text = TooLargeMessage
	case code >= http.StatusInternalServerError:
		text = "Something went wrong. Please try again."
	}

	var buf bytes.Buffer
	if err := view.ToastOOB(view.ToastError, text).Render(&buf); err != nil {
		return err
	}
	c.Response().Header().Set("HX-Reswap", "none")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
