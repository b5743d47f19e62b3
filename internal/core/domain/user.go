package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RolePatient = "patient"
)

// Roles is the closed set of role tags a user may carry.
var Roles = []string{RoleAdmin, RoleUser, RolePatient}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the credential record behind every authenticated actor.
// Email is the unique, case-sensitive login key. PasswordHash is never
// serialized and must never leave the process in any response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
