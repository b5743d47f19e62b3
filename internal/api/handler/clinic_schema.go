package handler

import "time"

type addDoctorRequest struct {
	Name           string `json:"name"             validate:"required"`
	Specialization string `json:"specialization"   validate:"required"`
	ExperienceYrs  int    `json:"experience_years" validate:"gte=0"`
}

type bookAppointmentRequest struct {
	DoctorID string    `json:"doctor_id" validate:"required"`
	At       time.Time `json:"at"        validate:"required"`
}
