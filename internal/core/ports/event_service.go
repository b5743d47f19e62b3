package ports

import (
	"context"
	"time"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type EventInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Date        time.Time
}

type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, actorID string, in EventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, in EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error

	Register(ctx context.Context, userID, eventID string) (*domain.Registration, error)
	Cancel(ctx context.Context, userID, eventID string) error
}
