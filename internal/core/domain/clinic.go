package domain

import "time"

// Doctor is a bookable practitioner, managed by admins.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	ExperienceYrs  int       `json:"experience_years,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// Appointment books a patient with a doctor at a point in time.
type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}
