package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Book domain. Write operations that
// touch the author junction run inside a single transaction.
type Repository interface {
	// Create inserts a book and its author links.
	// Errors: ErrDuplicateTitle, ErrDuplicateISBN
	Create(ctx context.Context, b *Book, authorIDs []uuid.UUID) (*Book, error)

	// GetByID returns the book with authors and library populated.
	// ErrBookNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetByISBN returns ErrBookNotFound when absent.
	GetByISBN(ctx context.Context, isbn string) (*Book, error)

	// GetByTitle returns ErrBookNotFound when absent.
	GetByTitle(ctx context.Context, title string) (*Book, error)

	GetAll(ctx context.Context) ([]Book, error)

	GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Book, error)
	GetByAuthorName(ctx context.Context, firstName, lastName string) ([]Book, error)
	GetByLibraryID(ctx context.Context, libraryID uuid.UUID) ([]Book, error)

	// Search applies the filter's criteria conjunctively.
	Search(ctx context.Context, filter BookFilter) ([]Book, error)

	// Update persists the book row and, when authorIDs is non-nil, replaces
	// the author links wholesale.
	// Errors: ErrBookNotFound, ErrDuplicateTitle, ErrDuplicateISBN
	Update(ctx context.Context, b *Book, authorIDs []uuid.UUID) (*Book, error)

	// Delete removes a book and its author links. ErrBookNotFound when
	// absent, ErrBookHasBorrows when borrow records still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}
