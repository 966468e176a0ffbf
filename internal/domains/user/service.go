package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the User domain.
type Service interface {
	// Create validates the email (non-blank, unique), defaults the type to
	// USER and hashes the password when one is supplied.
	// Errors: ErrBlankEmail, ErrInvalidType, ErrDuplicateEmail
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)

	// Login verifies credentials and issues a JWT.
	// Errors: ErrInvalidCredentials
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]User, error)

	// GetWithActiveBorrows returns users holding at least one active borrow.
	GetWithActiveBorrows(ctx context.Context) ([]User, error)

	// Update applies patch semantics; email uniqueness is re-checked only
	// when the email actually changes.
	// Errors: ErrUserNotFound, ErrDuplicateEmail, ErrInvalidType
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)

	// Delete removes a user by id.
	// Errors: ErrUserNotFound, ErrUserHasBorrows
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	CountActiveBorrows(ctx context.Context, userID uuid.UUID) (int64, error)
}
