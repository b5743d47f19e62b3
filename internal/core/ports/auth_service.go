package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

// SignupInput carries the fields accepted at registration. Role is optional
// and defaults to the configured baseline role.
type SignupInput struct {
	Email    string
	Password string
	Role     string
	Name     string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateName(ctx context.Context, userID, name string) (*domain.User, error)

	// Admin operations. actorID identifies the admin performing the change
	// and is recorded in the audit trail.
	ListUsers(ctx context.Context) ([]domain.User, error)
	ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}
