package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// RBAC enforces role-based access control on routes behind Auth. A valid
// identity with a role outside the allowed set yields 403, not 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireAdmin gates the menu-management and order-dashboard routes.
func RequireAdmin() echo.MiddlewareFunc {
	return RBAC(domain.RoleAdmin)
}
