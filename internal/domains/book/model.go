package book

import (
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/library"
)

// Book represents a title in the catalogue. Authors and Library are
// populated by read paths; write paths reference them by id only.
type Book struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	ISBN      *string    `json:"isbn,omitempty" db:"isbn"`
	LibraryID *uuid.UUID `json:"library_id,omitempty" db:"library_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	Authors []author.Author  `json:"authors" db:"-"`
	Library *library.Library `json:"library,omitempty" db:"-"`
}
