package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type stubBookRepo struct {
	byID map[string]*domain.Book
	seq  int
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{byID: make(map[string]*domain.Book)}
}

func (r *stubBookRepo) FindAll(context.Context) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	r.seq++
	clone := *book
	clone.ID = fmt.Sprintf("b%d", r.seq)
	r.byID[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubBookRepo) SetBorrower(_ context.Context, bookID, userID string) error {
	b, ok := r.byID[bookID]
	if !ok {
		return domain.ErrBookNotFound
	}
	if b.Borrowed {
		return domain.ErrBookUnavailable
	}
	b.Borrowed = true
	b.BorrowedBy = userID
	return nil
}

func (r *stubBookRepo) ClearBorrower(_ context.Context, bookID, userID string) error {
	b, ok := r.byID[bookID]
	if !ok {
		return domain.ErrBookNotFound
	}
	if !b.Borrowed || b.BorrowedBy != userID {
		return domain.ErrNotBorrower
	}
	b.Borrowed = false
	b.BorrowedBy = ""
	return nil
}

func TestBookService_BorrowAndReturn(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, zerolog.Nop())

	added, err := svc.Add(context.Background(), "admin-1", "The Go Programming Language", "Donovan & Kernighan")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	borrowed, err := svc.Borrow(context.Background(), "u1", added.ID)
	if err != nil {
		t.Fatalf("borrow: %v", err)
	}
	if !borrowed.Borrowed || borrowed.BorrowedBy != "u1" {
		t.Fatalf("unexpected state after borrow: %+v", borrowed)
	}

	// Second borrower loses; holder unchanged.
	if _, err := svc.Borrow(context.Background(), "u2", added.ID); err != domain.ErrBookUnavailable {
		t.Fatalf("expected ErrBookUnavailable, got %v", err)
	}
	current, _ := repo.FindByID(context.Background(), added.ID)
	if current.BorrowedBy != "u1" {
		t.Fatalf("holder changed by failed borrow: %+v", current)
	}

	// Only the holder can return it.
	if err := svc.Return(context.Background(), "u2", added.ID); err != domain.ErrNotBorrower {
		t.Fatalf("expected ErrNotBorrower, got %v", err)
	}
	if err := svc.Return(context.Background(), "u1", added.ID); err != nil {
		t.Fatalf("return: %v", err)
	}

	returned, _ := repo.FindByID(context.Background(), added.ID)
	if returned.Borrowed || returned.BorrowedBy != "" {
		t.Fatalf("book not released: %+v", returned)
	}
}

func TestBookService_BorrowMissing(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), zerolog.Nop())

	if _, err := svc.Borrow(context.Background(), "u1", "missing"); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}
