package models

import (
	"github.com/google/uuid"
)

// Card is a single note on a board. Board is set at creation and never
// changes afterwards.
type Card struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Board    uuid.UUID `gorm:"type:uuid;not null;index" json:"board"`
}
