package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the User domain.
type Repository interface {
	// Create inserts a new user. ErrDuplicateEmail on an email collision.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByID returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail returns ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	GetAll(ctx context.Context) ([]User, error)

	// GetWithActiveBorrows returns users holding at least one active borrow.
	GetWithActiveBorrows(ctx context.Context) ([]User, error)

	// Update persists the given state. ErrUserNotFound when absent,
	// ErrDuplicateEmail on a collision.
	Update(ctx context.Context, u *User) (*User, error)

	// Delete removes a user. ErrUserNotFound when absent, ErrUserHasBorrows
	// when borrow records still reference the user.
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountActiveBorrows counts the user's borrows with no return date.
	CountActiveBorrows(ctx context.Context, userID uuid.UUID) (int64, error)
}
