package library

import "errors"

var (
	ErrBlankName = errors.New("library name must not be blank")

	ErrLibraryNotFound = errors.New("library not found")
	ErrDuplicateName   = errors.New("library with this name already exists")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrLibraryNotFound):
		return "LIBRARY_NOT_FOUND"
	case errors.Is(err, ErrDuplicateName):
		return "DUPLICATE_NAME"
	case errors.Is(err, ErrBlankName):
		return "INVALID_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrLibraryNotFound):
		return 404
	case errors.Is(err, ErrDuplicateName):
		return 409
	case errors.Is(err, ErrBlankName):
		return 400
	default:
		return 500
	}
}
