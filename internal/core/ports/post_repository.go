package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
}
