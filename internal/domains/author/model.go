package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity, independent of database/API concerns.
type Author struct {
	ID uuid.UUID `json:"id" db:"id"`

	FirstName string `json:"first_name" db:"first_name"` // Required, non-blank
	LastName  string `json:"last_name" db:"last_name"`   // Required, non-blank

	BirthYear *int `json:"birth_year" db:"birth_year"` // Optional

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
