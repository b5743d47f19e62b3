package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

// PostHandler handles user-authored posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts (any authenticated user).
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	post, err := h.service.Create(c.Request().Context(), p.SubjectID, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// ListMine handles GET /posts/mine (the caller's own posts).
func (h *PostHandler) ListMine(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	posts, err := h.service.ListMine(c.Request().Context(), p.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// ListAll handles GET /admin/posts (admin only).
func (h *PostHandler) ListAll(c echo.Context) error {
	posts, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Delete handles DELETE /admin/posts/:id (admin only).
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
