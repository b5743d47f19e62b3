package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type stubEventRepo struct {
	byID map[string]*domain.Event
	seq  int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) FindAll(context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.seq++
	clone := *event
	clone.ID = fmt.Sprintf("e%d", r.seq)
	r.byID[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) (*domain.Event, error) {
	if _, ok := r.byID[event.ID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *event
	r.byID[event.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubRegRepo struct {
	keys map[string]bool
}

func newStubRegRepo() *stubRegRepo {
	return &stubRegRepo{keys: make(map[string]bool)}
}

func regKey(userID, eventID string) string { return userID + "/" + eventID }

func (r *stubRegRepo) Create(_ context.Context, reg *domain.Registration) (*domain.Registration, error) {
	k := regKey(reg.UserID, reg.EventID)
	if r.keys[k] {
		return nil, domain.ErrAlreadyRegistered
	}
	r.keys[k] = true
	clone := *reg
	clone.ID = "r-" + k
	return &clone, nil
}

func (r *stubRegRepo) Delete(_ context.Context, userID, eventID string) error {
	k := regKey(userID, eventID)
	if !r.keys[k] {
		return domain.ErrNotRegistered
	}
	delete(r.keys, k)
	return nil
}

func TestEventService_CreateUpdateDelete(t *testing.T) {
	events := newStubEventRepo()
	svc := NewEventService(events, newStubRegRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), "admin-1", ports.EventInput{
		Title: "GopherCon",
		Date:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.CreatedBy != "admin-1" {
		t.Fatalf("expected creator recorded, got %q", created.CreatedBy)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.EventInput{
		Title: "GopherCon EU",
		Date:  created.Date,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "GopherCon EU" {
		t.Fatalf("unexpected title: %s", updated.Title)
	}
	if updated.CreatedBy != "admin-1" {
		t.Fatalf("update must not change the creator")
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if _, err := svc.Update(context.Background(), created.ID, ports.EventInput{}); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound on update, got %v", err)
	}
}

func TestEventService_RegisterAndCancel(t *testing.T) {
	events := newStubEventRepo()
	svc := NewEventService(events, newStubRegRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-1", ports.EventInput{Title: "Meetup", Date: time.Now()})

	reg, err := svc.Register(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.UserID != "u1" || reg.EventID != created.ID {
		t.Fatalf("unexpected registration: %+v", reg)
	}

	if _, err := svc.Register(context.Background(), "u1", created.ID); err != domain.ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "u1", "missing"); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	if err := svc.Cancel(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Cancel(context.Background(), "u1", created.ID); err != domain.ErrNotRegistered {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}
