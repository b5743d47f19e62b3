package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type postService struct {
	posts ports.PostRepository
	log   zerolog.Logger
}

// NewPostService returns a PostService implementation.
func NewPostService(posts ports.PostRepository, log zerolog.Logger) ports.PostService {
	return &postService{posts: posts, log: log}
}

func (s *postService) Create(ctx context.Context, authorID, title, content string) (*domain.Post, error) {
	return s.posts.Create(ctx, &domain.Post{
		Title:     title,
		Content:   content,
		CreatedBy: authorID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *postService) ListMine(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.FindByAuthor(ctx, authorID)
}

func (s *postService) ListAll(ctx context.Context) ([]domain.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
