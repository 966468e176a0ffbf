package author

import "errors"

var (
	// Validation errors
	ErrBlankFirstName = errors.New("author first name must not be blank")
	ErrBlankLastName  = errors.New("author last name must not be blank")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("cannot delete author with linked books")
)

// ToErrorCode converts a domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	case errors.Is(err, ErrBlankFirstName), errors.Is(err, ErrBlankLastName):
		return "INVALID_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasBooks):
		return 409
	case errors.Is(err, ErrBlankFirstName), errors.Is(err, ErrBlankLastName):
		return 400
	default:
		return 500
	}
}
