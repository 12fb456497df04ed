package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// SetupRateLimiter limits requests per client IP with an in-memory token bucket.
// A non-positive rate leaves the server unlimited.
func SetupRateLimiter(e *echo.Echo, requestsPerSecond float64, burst int) {
	if requestsPerSecond <= 0 {
		return
	}
	if burst < 1 {
		burst = 1
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(requestsPerSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})

	e.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: skipQuietPaths,
		Store:   store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			path := c.Request().URL.Path
			log.Warn(msg.GetMessage("app.rate-limit-exceeded", identifier, path),
				zap.String("identifier", identifier), zap.String("path", path))
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msg.GetMessage("app.rate-limited")})
		},
	}))
}

// SetupRecover turns handler panics into 500 responses and logs them.
func SetupRecover(e *echo.Echo) {
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			uri := c.Request().RequestURI
			log.Error(msg.GetMessage("app.panic-recovered", uri, err),
				zap.String("uri", uri), zap.Error(err), zap.ByteString("stack", stack))
			return err
		},
	}))
}
