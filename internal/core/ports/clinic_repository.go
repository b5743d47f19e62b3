package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]domain.Doctor, error)
	FindByID(ctx context.Context, id string) (*domain.Doctor, error)
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
}
