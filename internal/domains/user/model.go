package user

import (
	"time"

	"github.com/google/uuid"
)

// Type is the user role.
type Type string

const (
	TypeUser  Type = "USER"
	TypeAdmin Type = "ADMIN"
)

func (t Type) Valid() bool {
	return t == TypeUser || t == TypeAdmin
}

// User is a library member (or admin).
type User struct {
	ID uuid.UUID `json:"id" db:"id"`

	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"` // Unique, required
	Type      Type   `json:"type" db:"type"`   // Defaults to USER

	// PasswordHash is only set for accounts that can log in. Never
	// serialized to API responses.
	PasswordHash *string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
