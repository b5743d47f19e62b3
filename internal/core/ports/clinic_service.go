package ports

import (
	"context"
	"time"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type DoctorInput struct {
	Name           string
	Specialization string
	ExperienceYrs  int
}

type AppointmentInput struct {
	DoctorID string
	At       time.Time
}

type ClinicService interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	AddDoctor(ctx context.Context, actorID string, in DoctorInput) (*domain.Doctor, error)

	// BookAppointment books the calling patient with an existing doctor.
	BookAppointment(ctx context.Context, patientID string, in AppointmentInput) (*domain.Appointment, error)
	// ListAppointments returns only the calling patient's bookings.
	ListAppointments(ctx context.Context, patientID string) ([]domain.Appointment, error)
}
