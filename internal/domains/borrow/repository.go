package borrow

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for the Borrow domain.
type Repository interface {
	// Create inserts a loan. ErrAlreadyBorrowed when the user already holds
	// an active loan for the same book.
	Create(ctx context.Context, b *Borrow) (*Borrow, error)

	// GetByID returns ErrBorrowNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Borrow, error)

	GetAll(ctx context.Context) ([]Borrow, error)

	// GetActive returns loans with no return date.
	GetActive(ctx context.Context) ([]Borrow, error)

	// GetOverdue returns active loans whose due date lies before asOf.
	GetOverdue(ctx context.Context, asOf time.Time) ([]Borrow, error)

	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Borrow, error)
	GetByBookID(ctx context.Context, bookID uuid.UUID) ([]Borrow, error)

	// GetByDateRange returns loans whose borrow date falls within
	// [from, to].
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Borrow, error)

	// FindActiveByUserAndBook returns ErrBorrowNotFound when the pair has
	// no active loan.
	FindActiveByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*Borrow, error)

	// Update persists due date and return date. ErrBorrowNotFound when
	// absent.
	Update(ctx context.Context, b *Borrow) (*Borrow, error)

	// Delete removes a loan record. ErrBorrowNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// HasActiveByBook reports whether any active loan references the book.
	HasActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error)

	// HasActiveByUser reports whether the user holds any active loan.
	HasActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
