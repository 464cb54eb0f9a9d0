package models

import (
	"time"

	"github.com/google/uuid"
)

// Term represents a glossary entry mapping a name to a definition.
// Key is the lowercase, trimmed form of Name and is the identity used
// for lookups and uniqueness.
type Term struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
