package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

// EventHandler handles event catalogue and registration routes.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /events (public).
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id (public).
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /admin/events (admin only).
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      403   {object}  errorResponse
// @Router       /admin/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
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

	event, err := h.service.Create(c.Request().Context(), p.SubjectID, toEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /admin/events/:id (admin only).
func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), toEventInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /admin/events/:id (admin only).
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register handles POST /events/:id/registrations (any authenticated user).
func (h *EventHandler) Register(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	reg, err := h.service.Register(c.Request().Context(), p.SubjectID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reg)
}

// Cancel handles DELETE /events/:id/registrations (any authenticated user).
func (h *EventHandler) Cancel(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	if err := h.service.Cancel(c.Request().Context(), p.SubjectID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toEventInput(r eventRequest) ports.EventInput {
	return ports.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Location:    r.Location,
		Date:        r.Date,
	}
}
