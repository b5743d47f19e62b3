package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

// BookHandler handles the lending catalogue routes.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books (public).
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Add handles POST /books (admin only).
func (h *BookHandler) Add(c echo.Context) error {
	var req addBookRequest
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

	book, err := h.service.Add(c.Request().Context(), p.SubjectID, req.Title, req.Author)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, book)
}

// Borrow handles POST /books/:id/borrow (role user).
func (h *BookHandler) Borrow(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	book, err := h.service.Borrow(c.Request().Context(), p.SubjectID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Return handles POST /books/:id/return (role user).
func (h *BookHandler) Return(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	if err := h.service.Return(c.Request().Context(), p.SubjectID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
