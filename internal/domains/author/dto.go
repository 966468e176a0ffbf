package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthYear *int   `json:"birth_year,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.BirthYear,
			validation.Min(0), validation.Max(3000),
		),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// All fields optional: nil leaves the stored value unchanged.
type UpdateAuthorRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	BirthYear *int    `json:"birth_year,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(1, 255)),
		validation.Field(&r.LastName, validation.Length(1, 255)),
		validation.Field(&r.BirthYear, validation.Min(0), validation.Max(3000)),
	)
}

// AuthorResponse is the API shape of an Author.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthYear *int      `json:"birth_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		BirthYear: a.BirthYear,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToResponseList(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = *a.ToResponse()
	}
	return out
}
