package borrow

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Borrow is a loan record. A nil ReturnDate marks the loan as active.
type Borrow struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	BookID     uuid.UUID  `json:"book_id" db:"book_id"`
	BorrowDate time.Time  `json:"borrow_date" db:"borrow_date"`
	DueDate    time.Time  `json:"due_date" db:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty" db:"return_date"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

func (b *Borrow) IsActive() bool {
	return b.ReturnDate == nil
}

// IsOverdue reports whether an active loan is past its due date. A
// returned loan is never overdue; lateness of a past return shows up in
// DaysLate and Fine only.
func (b *Borrow) IsOverdue(asOf time.Time) bool {
	return b.ReturnDate == nil && asOf.After(b.DueDate)
}

// DaysLate counts started days past the due date. For returned loans the
// return date is compared instead of asOf.
func (b *Borrow) DaysLate(asOf time.Time) int {
	end := asOf
	if b.ReturnDate != nil {
		end = *b.ReturnDate
	}
	if !end.After(b.DueDate) {
		return 0
	}
	return int(math.Ceil(end.Sub(b.DueDate).Hours() / 24))
}

// Fine is days late times the daily rate.
func (b *Borrow) Fine(asOf time.Time, dailyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(b.DaysLate(asOf))).Mul(dailyRate)
}
