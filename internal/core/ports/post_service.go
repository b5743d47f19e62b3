package ports

import (
	"context"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type PostService interface {
	Create(ctx context.Context, authorID, title, content string) (*domain.Post, error)
	ListMine(ctx context.Context, authorID string) ([]domain.Post, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	Delete(ctx context.Context, id string) error
}
