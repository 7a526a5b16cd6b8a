package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/core/ports"
)

// ContextKeyUID is the echo context key under which Auth stores the verified
// caller uid.
const ContextKeyUID = "uid"

// Auth extracts the bearer token, verifies it with the identity provider and
// injects the caller uid into the request context. The check runs on every
// request; there is no session or token cache.
func Auth(identity ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			uid, err := identity.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyUID, uid)
			return next(c)
		}
	}
}

// CallerUID returns the uid stored by Auth, or "" when the middleware did not run.
func CallerUID(c echo.Context) string {
	uid, _ := c.Get(ContextKeyUID).(string)
	return uid
}
