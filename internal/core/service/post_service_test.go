package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
)

type stubPostRepo struct {
	posts []domain.Post
	seq   int
}

func (s *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	s.seq++
	created := *post
	created.ID = "post-" + strconv.Itoa(s.seq)
	s.posts = append(s.posts, created)
	return &created, nil
}

func (s *stubPostRepo) FindByAuthor(_ context.Context, authorID string) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range s.posts {
		if p.CreatedBy == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPostRepo) FindAll(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *stubPostRepo) Delete(_ context.Context, id string) error {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func TestPostCreateStampsAuthor(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, zerolog.Nop())

	post, err := svc.Create(context.Background(), "author-1", "title", "content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.CreatedBy != "author-1" {
		t.Fatalf("got author %q, want author-1", post.CreatedBy)
	}
	if post.ID == "" {
		t.Fatal("expected assigned ID")
	}
}

func TestPostListMineFiltersByAuthor(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo, zerolog.Nop())

	ctx := context.Background()
	_, _ = svc.Create(ctx, "alice", "a1", "x")
	_, _ = svc.Create(ctx, "bob", "b1", "y")
	_, _ = svc.Create(ctx, "alice", "a2", "z")

	mine, err := svc.ListMine(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d posts, want 2", len(mine))
	}
	for _, p := range mine {
		if p.CreatedBy != "alice" {
			t.Fatalf("unexpected author %q in result", p.CreatedBy)
		}
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d posts, want 3", len(all))
	}
}

func TestPostDeleteMissing(t *testing.T) {
	svc := NewPostService(&stubPostRepo{}, zerolog.Nop())

	if err := svc.Delete(context.Background(), "nope"); err != domain.ErrPostNotFound {
		t.Fatalf("got %v, want ErrPostNotFound", err)
	}
}
