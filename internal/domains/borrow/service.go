package borrow

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines business logic for the Borrow domain.
type Service interface {
	// Create verifies that the user and book exist, that the due date lies
	// in the future and that the pair has no active loan, then opens one.
	// Errors: user.ErrUserNotFound, book.ErrBookNotFound,
	// ErrInvalidDueDate, ErrAlreadyBorrowed
	Create(ctx context.Context, req *CreateBorrowRequest) (*Borrow, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Borrow, error)
	GetAll(ctx context.Context) ([]Borrow, error)
	GetActive(ctx context.Context) ([]Borrow, error)

	// GetOverdue returns active loans past their due date as of now.
	GetOverdue(ctx context.Context) ([]Borrow, error)

	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Borrow, error)
	GetByBookID(ctx context.Context, bookID uuid.UUID) ([]Borrow, error)

	// GetByDateRange returns loans opened within [from, to].
	// Errors: ErrInvalidDateRange
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Borrow, error)

	// Return closes an active loan by stamping the return date. Returning
	// twice fails.
	// Errors: ErrBorrowNotFound, ErrAlreadyReturned
	Return(ctx context.Context, id uuid.UUID) (*Borrow, error)

	// Update reschedules the due date. Nothing else about the loan can be
	// changed after creation.
	// Errors: ErrBorrowNotFound, ErrAlreadyReturned, ErrInvalidDueDate
	Update(ctx context.Context, id uuid.UUID, req *UpdateBorrowRequest) (*Borrow, error)

	// Delete removes a loan record.
	// Errors: ErrBorrowNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// IsBookBorrowed reports whether the book has any active loan.
	IsBookBorrowed(ctx context.Context, bookID uuid.UUID) (bool, error)

	// HasActiveBorrows reports whether the user holds any active loan.
	HasActiveBorrows(ctx context.Context, userID uuid.UUID) (bool, error)

	// ToResponse renders a loan as of now with the configured fine rate.
	ToResponse(b *Borrow) *BorrowResponse
	ToResponseList(borrows []Borrow) []BorrowResponse
}
