package library

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateLibraryRequest - POST /v1/libraries
type CreateLibraryRequest struct {
	Name string `json:"name"`
}

func (r CreateLibraryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateLibraryRequest - PUT /v1/libraries/:id
type UpdateLibraryRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateLibraryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
	)
}

type LibraryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l Library) ToResponse() *LibraryResponse {
	return &LibraryResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func ToResponseList(libraries []Library) []LibraryResponse {
	out := make([]LibraryResponse, len(libraries))
	for i, l := range libraries {
		out[i] = *l.ToResponse()
	}
	return out
}
