package user

import "errors"

var (
	// Validation errors
	ErrBlankEmail         = errors.New("user email must not be blank")
	ErrInvalidType        = errors.New("invalid user type")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Business rule errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrUserHasBorrows = errors.New("cannot delete user with borrow records")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrUserHasBorrows):
		return "USER_HAS_BORROWS"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrBlankEmail), errors.Is(err, ErrInvalidType):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrUserHasBorrows):
		return 409
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrBlankEmail), errors.Is(err, ErrInvalidType):
		return 400
	default:
		return 500
	}
}
