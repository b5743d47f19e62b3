package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/metrics"
	"github.com/communityhub/platform-api/internal/core/domain"
)

// RequireRole admits only principals whose role is in the allowed set.
// It must run after Authenticate; if no Principal is present the gate was
// misordered and the request is rejected rather than let through.
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := GetPrincipal(c)
			if !ok {
				metrics.AuthzDenialsTotal.Inc()
				return domain.ErrForbidden
			}
			if _, ok := set[p.Role]; !ok {
				metrics.AuthzDenialsTotal.Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
