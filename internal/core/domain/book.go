package domain

import "time"

// Book is a lendable catalogue item. At most one user holds a book at a time;
// BorrowedBy is empty while the book sits on the shelf.
type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	AddedBy    string    `json:"added_by"`
	Borrowed   bool      `json:"borrowed"`
	BorrowedBy string    `json:"borrowed_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
