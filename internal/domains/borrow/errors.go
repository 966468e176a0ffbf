package borrow

import (
	"errors"
	"net/http"
)

var (
	ErrBorrowNotFound   = errors.New("borrow record not found")
	ErrAlreadyBorrowed  = errors.New("user already has an active borrow for this book")
	ErrAlreadyReturned  = errors.New("borrow has already been returned")
	ErrInvalidDueDate   = errors.New("due date must be after the borrow date")
	ErrInvalidDateRange = errors.New("range start must not be after range end")
)

// ToErrorCode maps a domain error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBorrowNotFound):
		return "BORROW_NOT_FOUND"
	case errors.Is(err, ErrAlreadyBorrowed):
		return "ALREADY_BORROWED"
	case errors.Is(err, ErrAlreadyReturned):
		return "ALREADY_RETURNED"
	case errors.Is(err, ErrInvalidDueDate):
		return "INVALID_DUE_DATE"
	case errors.Is(err, ErrInvalidDateRange):
		return "INVALID_DATE_RANGE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBorrowNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyBorrowed), errors.Is(err, ErrAlreadyReturned):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidDueDate), errors.Is(err, ErrInvalidDateRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
