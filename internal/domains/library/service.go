package library

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Library domain.
type Service interface {
	// Create validates the name (non-blank, unique) and persists.
	// Errors: ErrBlankName, ErrDuplicateName
	Create(ctx context.Context, req *CreateLibraryRequest) (*Library, error)

	// GetByID returns ErrLibraryNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Library, error)

	// GetByName matches the name exactly (case-sensitive).
	GetByName(ctx context.Context, name string) (*Library, error)

	GetAll(ctx context.Context) ([]Library, error)

	// Update applies patch semantics. A rename to the current name is a
	// no-op; a rename colliding with a different library fails.
	// Errors: ErrLibraryNotFound, ErrDuplicateName
	Update(ctx context.Context, id uuid.UUID, req *UpdateLibraryRequest) (*Library, error)

	// Delete removes a library by id. Errors: ErrLibraryNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
