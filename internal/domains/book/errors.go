package book

import (
	"errors"
	"net/http"
)

var (
	ErrBlankTitle     = errors.New("book title cannot be blank")
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateTitle = errors.New("book title already exists")
	ErrDuplicateISBN  = errors.New("book isbn already exists")
	ErrBookHasBorrows = errors.New("book has borrow records")
)

// ToErrorCode maps a domain error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateTitle):
		return "DUPLICATE_TITLE"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	case errors.Is(err, ErrBookHasBorrows):
		return "BOOK_HAS_BORROWS"
	case errors.Is(err, ErrBlankTitle):
		return "BLANK_TITLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateTitle),
		errors.Is(err, ErrDuplicateISBN),
		errors.Is(err, ErrBookHasBorrows):
		return http.StatusConflict
	case errors.Is(err, ErrBlankTitle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
