package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Author domain.
type Service interface {
	// Create validates names (non-blank after trimming) and persists.
	// Errors: ErrBlankFirstName, ErrBlankLastName
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	GetAll(ctx context.Context) ([]Author, error)

	// GetByName matches first and last name exactly.
	GetByName(ctx context.Context, firstName, lastName string) (*Author, error)

	// GetByBirthYearRange returns authors born within [startYear, endYear].
	GetByBirthYearRange(ctx context.Context, startYear, endYear int) ([]Author, error)

	// GetWithoutBooks returns authors with zero associated books.
	GetWithoutBooks(ctx context.Context) ([]Author, error)

	// Update applies patch semantics: non-nil fields overwrite, names must
	// stay non-blank.
	// Errors: ErrAuthorNotFound, ErrBlankFirstName, ErrBlankLastName
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author by id.
	// Errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
