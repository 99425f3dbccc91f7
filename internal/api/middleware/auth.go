package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghive/blog-platform/internal/api/metrics"
	"github.com/bloghive/blog-platform/internal/core/domain"
	"github.com/bloghive/blog-platform/internal/core/ports"
)

// UsernameKey is the context key under which the gate stores the
// authenticated username for downstream handlers.
const UsernameKey = "username"

// Auth is the request gate for mutating post routes. A missing or malformed
// Authorization header is 401; a credential that fails verification is 403,
// without distinguishing expired from forged on the wire (the distinction
// is logged and counted). Every rejection is a returned error, so the next
// handler is unreachable unless verification succeeded.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			username, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				result := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					result = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues("access", result).Inc()
				log.Debug().
					Str("path", c.Path()).
					Str("reason", result).
					Msg("access token rejected")
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("access", "ok").Inc()
			c.Set(UsernameKey, username)
			return next(c)
		}
	}
}
