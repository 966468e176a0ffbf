package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/library"
)

// BookAuthorRef names an author inside a book payload. With an ID it refers
// to an existing author; without one it describes an author to create.
type BookAuthorRef struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthYear *int       `json:"birth_year,omitempty"`
}

func (r BookAuthorRef) Validate() error {
	if r.ID != nil {
		return nil
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.BirthYear, validation.Min(0), validation.Max(3000)),
	)
}

// LibraryRef attaches a book to a library. A nil ID detaches the book.
type LibraryRef struct {
	ID *uuid.UUID `json:"id"`
}

type CreateBookRequest struct {
	Title   string          `json:"title"`
	ISBN    *string         `json:"isbn,omitempty"`
	Authors []BookAuthorRef `json:"authors"`
	Library *LibraryRef     `json:"library,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ISBN, validation.Length(1, 32)),
	)
}

// UpdateBookRequest applies patch semantics: nil fields are left unchanged.
// A non-nil Authors slice replaces the author set wholesale. A non-nil
// Library with a nil ID detaches the book from its library.
type UpdateBookRequest struct {
	Title   *string          `json:"title,omitempty"`
	ISBN    *string          `json:"isbn,omitempty"`
	Authors *[]BookAuthorRef `json:"authors,omitempty"`
	Library *LibraryRef      `json:"library,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.ISBN, validation.Length(1, 32)),
	)
}

// BookFilter holds conjunctive search criteria; zero-valued fields are
// ignored.
type BookFilter struct {
	Title           string
	ISBN            string
	AuthorFirstName string
	AuthorLastName  string
	LibraryName     string
}

// IsEmpty reports whether no criterion is set.
func (f BookFilter) IsEmpty() bool {
	return f.Title == "" && f.ISBN == "" &&
		f.AuthorFirstName == "" && f.AuthorLastName == "" &&
		f.LibraryName == ""
}

type BookResponse struct {
	ID        uuid.UUID                `json:"id"`
	Title     string                   `json:"title"`
	ISBN      *string                  `json:"isbn,omitempty"`
	Authors   []author.AuthorResponse  `json:"authors"`
	Library   *library.LibraryResponse `json:"library,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func (b Book) ToResponse() *BookResponse {
	resp := &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		ISBN:      b.ISBN,
		Authors:   author.ToResponseList(b.Authors),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Library != nil {
		resp.Library = b.Library.ToResponse()
	}
	return resp
}

func ToResponseList(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = *b.ToResponse()
	}
	return out
}
