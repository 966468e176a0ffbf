package library

import (
	"time"

	"github.com/google/uuid"
)

// Library is a physical branch books can be attached to.
type Library struct {
	ID uuid.UUID `json:"id" db:"id"`

	Name string `json:"name" db:"name"` // Unique, non-empty

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
