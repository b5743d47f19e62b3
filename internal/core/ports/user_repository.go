package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

// UserRepository is the abstract credential store. Implementations must
// enforce email uniqueness at the storage layer and surface racing duplicate
// inserts as domain.ErrEmailTaken.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
