package borrow

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBorrowRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	BookID  uuid.UUID `json:"book_id"`
	DueDate time.Time `json:"due_date"`
}

func (r CreateBorrowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.BookID, validation.Required),
		validation.Field(&r.DueDate, validation.Required),
	)
}

// UpdateBorrowRequest reschedules a loan. Only the due date may change;
// borrow date, parties and return state are immutable through this path.
type UpdateBorrowRequest struct {
	DueDate time.Time `json:"due_date"`
}

func (r UpdateBorrowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DueDate, validation.Required),
	)
}

type BorrowResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	BookID     uuid.UUID  `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsOverdue  bool       `json:"is_overdue"`
	Fine       string     `json:"fine"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToResponse renders a loan as of a point in time with the given fine rate.
func ToResponse(b *Borrow, asOf time.Time, dailyRate decimal.Decimal) *BorrowResponse {
	return &BorrowResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		BookID:     b.BookID,
		BorrowDate: b.BorrowDate,
		DueDate:    b.DueDate,
		ReturnDate: b.ReturnDate,
		IsActive:   b.IsActive(),
		IsOverdue:  b.IsOverdue(asOf),
		Fine:       b.Fine(asOf, dailyRate).StringFixed(2),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func ToResponseList(borrows []Borrow, asOf time.Time, dailyRate decimal.Decimal) []BorrowResponse {
	out := make([]BorrowResponse, len(borrows))
	for i := range borrows {
		out[i] = *ToResponse(&borrows[i], asOf, dailyRate)
	}
	return out
}
