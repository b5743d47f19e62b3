package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type stubAuditStore struct {
	mu       sync.Mutex
	records  []domain.AuditRecord
	failNext int
}

func (s *stubAuditStore) Insert(_ context.Context, rec *domain.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext > 0 {
		s.failNext--
		return errors.New("write failed")
	}
	s.records = append(s.records, *rec)
	return nil
}

func (s *stubAuditStore) FindRecent(_ context.Context, limit int) ([]domain.AuditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubAuditStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherPersistsEntries(t *testing.T) {
	store := &stubAuditStore{}
	d := NewDispatcher(2, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(ports.AuditEntry{
			Action:  domain.AuditLoginOK,
			Subject: "user-1",
			At:      time.Now(),
		})
	}

	waitFor(t, func() bool { return store.count() == 10 })
}

func TestDispatcherSameSubjectKeepsOrder(t *testing.T) {
	store := &stubAuditStore{}
	d := NewDispatcher(4, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.AuditSignup, domain.AuditLoginFailed, domain.AuditLoginOK}
	for _, a := range actions {
		d.Record(ports.AuditEntry{Action: a, Subject: "alice@example.com", At: time.Now()})
	}

	waitFor(t, func() bool { return store.count() == 3 })

	recs, _ := store.FindRecent(context.Background(), 3)
	for i, a := range actions {
		if recs[i].Action != a {
			t.Fatalf("record %d: got action %q, want %q", i, recs[i].Action, a)
		}
	}
}

func TestDispatcherSurvivesStoreErrors(t *testing.T) {
	store := &stubAuditStore{failNext: 1}
	d := NewDispatcher(1, store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// The first insert fails, is logged, and is dropped; the worker keeps
	// consuming and persists the second entry.
	d.Record(ports.AuditEntry{Action: domain.AuditSignup, Subject: "u1", At: time.Now()})
	d.Record(ports.AuditEntry{Action: domain.AuditLoginOK, Subject: "u1", At: time.Now()})

	waitFor(t, func() bool { return store.count() == 1 })

	recs, _ := store.FindRecent(context.Background(), 1)
	if recs[0].Action != domain.AuditLoginOK {
		t.Fatalf("got action %q, want %q", recs[0].Action, domain.AuditLoginOK)
	}
}

func TestDispatcherDefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &stubAuditStore{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("got %d workers, want %d", len(d.workers), defaultWorkers)
	}
}
