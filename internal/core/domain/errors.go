package domain

import "errors"

// Credential and token errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUserNotFound       = errors.New("user not found")
)

// Resource errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrAlreadyRegistered   = errors.New("already registered for event")
	ErrNotRegistered       = errors.New("not registered for event")
	ErrBookNotFound        = errors.New("book not found")
	ErrBookUnavailable     = errors.New("book already borrowed")
	ErrNotBorrower         = errors.New("book borrowed by someone else")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentTaken    = errors.New("appointment slot already taken")
	ErrPostNotFound        = errors.New("post not found")
)
