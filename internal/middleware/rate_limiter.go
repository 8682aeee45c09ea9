package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRatePerMinute is used when RateLimiter is given a non-positive rate.
const DefaultRatePerMinute = 10

// RateLimitedMessage is returned to clients over their limit.
const RateLimitedMessage = "Too many requests. Please wait a minute and try again."

// RateLimiter limits each client IP to perMinute requests per minute on the
// routes it's applied to. A full minute's allowance may be spent at once.
func RateLimiter(perMinute float64) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = DefaultRatePerMinute
	}
	burst := int(perMinute)
	if burst < 1 {
		burst = 1
	}

	config := middleware.RateLimiterConfig{
		// Per-process store; limits are not shared between replicas.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),

		// Clients are told apart by IP.
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, RateLimitedMessage)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
