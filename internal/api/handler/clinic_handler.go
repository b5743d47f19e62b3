package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityhub/platform-api/internal/api/middleware"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

// ClinicHandler handles doctor and appointment routes.
type ClinicHandler struct {
	service ports.ClinicService
}

func NewClinicHandler(service ports.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

// ListDoctors handles GET /doctors (public).
func (h *ClinicHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /admin/doctors (admin only).
func (h *ClinicHandler) AddDoctor(c echo.Context) error {
	var req addDoctorRequest
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

	doctor, err := h.service.AddDoctor(c.Request().Context(), p.SubjectID, ports.DoctorInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		ExperienceYrs:  req.ExperienceYrs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doctor)
}

// BookAppointment handles POST /appointments (role patient).
func (h *ClinicHandler) BookAppointment(c echo.Context) error {
	var req bookAppointmentRequest
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

	appt, err := h.service.BookAppointment(c.Request().Context(), p.SubjectID, ports.AppointmentInput{
		DoctorID: req.DoctorID,
		At:       req.At,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appt)
}

// ListAppointments handles GET /appointments (the caller sees only their own).
func (h *ClinicHandler) ListAppointments(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.ErrMissingToken
	}

	appts, err := h.service.ListAppointments(c.Request().Context(), p.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}
