package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Author domain.
type Repository interface {
	// Create inserts a new author and returns it with ID and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns every author ordered by last name, first name.
	GetAll(ctx context.Context) ([]Author, error)

	// GetByName matches first and last name exactly.
	// Returns ErrAuthorNotFound when there is no match.
	GetByName(ctx context.Context, firstName, lastName string) (*Author, error)

	// GetByBirthYearRange returns authors born within [startYear, endYear].
	GetByBirthYearRange(ctx context.Context, startYear, endYear int) ([]Author, error)

	// GetWithoutBooks returns authors with no book association.
	GetWithoutBooks(ctx context.Context) ([]Author, error)

	// Update persists the given state. ErrAuthorNotFound when absent.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes an author. ErrAuthorNotFound when absent,
	// ErrAuthorHasBooks when books still reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
