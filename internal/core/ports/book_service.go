package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Add(ctx context.Context, actorID, title, author string) (*domain.Book, error)
	Borrow(ctx context.Context, userID, bookID string) (*domain.Book, error)
	Return(ctx context.Context, userID, bookID string) error
}
