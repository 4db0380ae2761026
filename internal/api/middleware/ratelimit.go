package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/tradepost/tradepost/internal/api/handlers"
)

// RateLimit returns Echo middleware enforcing a global token-bucket limit
// across all clients. Requests over the limit get 429 without reaching the
// handler. perSecond is the sustained rate; burst is the bucket size.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, handlers.ErrorResponse{
					Error: "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
