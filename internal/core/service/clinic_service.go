package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type clinicService struct {
	doctors ports.DoctorRepository
	appts   ports.AppointmentRepository
	log     zerolog.Logger
}

// NewClinicService returns a ClinicService implementation.
func NewClinicService(doctors ports.DoctorRepository, appts ports.AppointmentRepository, log zerolog.Logger) ports.ClinicService {
	return &clinicService{doctors: doctors, appts: appts, log: log}
}

func (s *clinicService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return s.doctors.FindAll(ctx)
}

func (s *clinicService) AddDoctor(ctx context.Context, actorID string, in ports.DoctorInput) (*domain.Doctor, error) {
	created, err := s.doctors.Create(ctx, &domain.Doctor{
		Name:           in.Name,
		Specialization: in.Specialization,
		ExperienceYrs:  in.ExperienceYrs,
		CreatedBy:      actorID,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("doctor_id", created.ID).Str("actor_id", actorID).Msg("doctor added")
	return created, nil
}

func (s *clinicService) BookAppointment(ctx context.Context, patientID string, in ports.AppointmentInput) (*domain.Appointment, error) {
	if _, err := s.doctors.FindByID(ctx, in.DoctorID); err != nil {
		return nil, err
	}
	return s.appts.Create(ctx, &domain.Appointment{
		PatientID: patientID,
		DoctorID:  in.DoctorID,
		At:        in.At,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *clinicService) ListAppointments(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return s.appts.FindByPatient(ctx, patientID)
}
