package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// RequireAdmin gates mutating routes on the admin role. The caller's profile
// is re-read from the users collection on every request, so a role change
// takes effect immediately. Must run after Auth.
func RequireAdmin(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := CallerUID(c)
			if uid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
			}

			profile, err := users.FindByID(c.Request().Context(), uid)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "admin access required")
				}
				return err
			}
			if profile.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			return next(c)
		}
	}
}
