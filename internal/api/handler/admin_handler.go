package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AdminHandler exposes user administration and the audit trail. Every route
// sits behind RequireRole(admin).
type AdminHandler struct {
	authService ports.AuthService
	audit       ports.AuditRepository
}

func NewAdminHandler(authService ports.AuthService, audit ports.AuditRepository) *AdminHandler {
	return &AdminHandler{authService: authService, audit: audit}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user patient"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangeRole handles PUT /admin/users/:id/role. The new role applies on the
// target's next login; tokens already issued keep their snapshot.
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrForbidden
	}

	user, err := h.authService.ChangeRole(c.Request().Context(), p.SubjectID, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrForbidden
	}

	if err := h.authService.DeleteUser(c.Request().Context(), p.SubjectID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAudit handles GET /admin/audit?limit=N.
func (h *AdminHandler) ListAudit(c echo.Context) error {
	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, maxAuditLimit)
	}

	records, err := h.audit.FindRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
