package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

type bookService struct {
	books ports.BookRepository
	log   zerolog.Logger
}

// NewBookService returns a BookService implementation.
func NewBookService(books ports.BookRepository, log zerolog.Logger) ports.BookService {
	return &bookService{books: books, log: log}
}

func (s *bookService) List(ctx context.Context) ([]domain.Book, error) {
	return s.books.FindAll(ctx)
}

func (s *bookService) Add(ctx context.Context, actorID, title, author string) (*domain.Book, error) {
	now := time.Now().UTC()
	created, err := s.books.Create(ctx, &domain.Book{
		Title:     title,
		Author:    author,
		AddedBy:   actorID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("book_id", created.ID).Str("actor_id", actorID).Msg("book added")
	return created, nil
}

// Borrow hands the book to userID. The repository applies the borrow as a
// conditional update, so two racing borrowers cannot both succeed.
func (s *bookService) Borrow(ctx context.Context, userID, bookID string) (*domain.Book, error) {
	if err := s.books.SetBorrower(ctx, bookID, userID); err != nil {
		return nil, err
	}
	return s.books.FindByID(ctx, bookID)
}

func (s *bookService) Return(ctx context.Context, userID, bookID string) error {
	return s.books.ClearBorrower(ctx, bookID, userID)
}
