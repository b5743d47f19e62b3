package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

// RegistrationRepository persists event sign-ups. The (user, event) pair is
// unique at the storage layer; a racing duplicate insert surfaces as
// domain.ErrAlreadyRegistered.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	Delete(ctx context.Context, userID, eventID string) error
}
