package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type eventService struct {
	events ports.EventRepository
	regs   ports.RegistrationRepository
	log    zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(events ports.EventRepository, regs ports.RegistrationRepository, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, regs: regs, log: log}
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, actorID string, in ports.EventInput) (*domain.Event, error) {
	now := time.Now().UTC()
	created, err := s.events.Create(ctx, &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Date:        in.Date,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.log.Info().Str("event_id", created.ID).Str("actor_id", actorID).Msg("event created")
	return created, nil
}

func (s *eventService) Update(ctx context.Context, id string, in ports.EventInput) (*domain.Event, error) {
	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Description = in.Description
	existing.Category = in.Category
	existing.Location = in.Location
	existing.Date = in.Date
	existing.UpdatedAt = time.Now().UTC()

	return s.events.Update(ctx, existing)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

// Register signs userID up for an event. The storage layer enforces the
// (user, event) uniqueness, so a double submit fails with ErrAlreadyRegistered
// even when two requests race past the existence check.
func (s *eventService) Register(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.regs.Create(ctx, &domain.Registration{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *eventService) Cancel(ctx context.Context, userID, eventID string) error {
	return s.regs.Delete(ctx, userID, eventID)
}
