package library

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Library domain.
type Repository interface {
	// Create inserts a new library. ErrDuplicateName on a name collision.
	Create(ctx context.Context, l *Library) (*Library, error)

	// GetByID returns ErrLibraryNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Library, error)

	// GetByName matches exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*Library, error)

	GetAll(ctx context.Context) ([]Library, error)

	// Update persists the given state. ErrLibraryNotFound when absent,
	// ErrDuplicateName on a name collision.
	Update(ctx context.Context, l *Library) (*Library, error)

	// Delete removes a library. Books keep existing with their library
	// reference cleared by the store.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
