package models

import (
	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is serialized on
// purpose: the historical API returned the full stored document on
// authentication and user lookups, and clients depend on that shape.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"not null" json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
}
