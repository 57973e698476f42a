package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Board represents a kanban board.
//
// Owners holds user ids as given by the client at creation time. Cards is a
// denormalized list of card ids kept in sync by the card handlers: creating a
// card appends its id here, deleting one pulls it out. The authoritative
// relation is Card.Board; this list can drift if one half of the two-step
// update fails.
type Board struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Owners      datatypes.JSONSlice[string] `json:"owners"`
	Cards       datatypes.JSONSlice[string] `json:"cards"`
}
