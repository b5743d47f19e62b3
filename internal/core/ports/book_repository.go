package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

// BookRepository persists the lending catalogue. SetBorrower and
// ClearBorrower are conditional updates: the storage layer decides the
// outcome atomically so two racing borrowers cannot both win.
type BookRepository interface {
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)

	// SetBorrower marks the book as borrowed by userID. Fails with
	// domain.ErrBookUnavailable when it is already held.
	SetBorrower(ctx context.Context, bookID, userID string) error

	// ClearBorrower releases the book. Fails with domain.ErrNotBorrower
	// when userID is not the current holder.
	ClearBorrower(ctx context.Context, bookID, userID string) error
}
