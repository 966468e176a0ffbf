package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Book domain.
type Service interface {
	// Create validates the title and isbn, resolves or creates the named
	// authors, verifies the target library and persists the book. Author
	// refs without an id are created; refs with an id must exist. A book
	// may carry no authors at all.
	// Errors: ErrBlankTitle, ErrDuplicateTitle, ErrDuplicateISBN,
	// author.ErrAuthorNotFound, library.ErrLibraryNotFound
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	GetByTitle(ctx context.Context, title string) (*Book, error)
	GetAll(ctx context.Context) ([]Book, error)

	GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Book, error)
	GetByAuthorName(ctx context.Context, firstName, lastName string) ([]Book, error)
	GetByLibraryID(ctx context.Context, libraryID uuid.UUID) ([]Book, error)

	// Search applies the filter's criteria conjunctively; an empty filter
	// behaves like GetAll.
	Search(ctx context.Context, filter BookFilter) ([]Book, error)

	// Update applies patch semantics. A non-nil Authors slice replaces the
	// author set; a non-nil Library with a nil ID detaches the book.
	// Errors: ErrBookNotFound, ErrBlankTitle, ErrDuplicateTitle,
	// ErrDuplicateISBN, author.ErrAuthorNotFound,
	// library.ErrLibraryNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete removes a book by id.
	// Errors: ErrBookNotFound, ErrBookHasBorrows
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
