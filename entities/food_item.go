package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID       uuid.UUID `json:"couple_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Location       string    `json:"location,omitempty"` // "frigo", "placard", "congelateur"
	ExpirationDate time.Time `json:"expiration_date"`
	Quantity       int       `gorm:"default:1" json:"quantity"`
	Status         string    `json:"status"` // "fresh", "soon", "expired" - cached, recomputed on write

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}

// FoodEvent is the append-only log of consumption and discard actions.
// Rows are never updated or deleted; all anti-waste statistics derive from it.
type FoodEvent struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID       uuid.UUID `json:"couple_id"`
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category,omitempty"`
	Location       string    `json:"location,omitempty"`
	EventType      string    `json:"event_type"` // "consumed", "discarded"
	Quantity       int       `gorm:"default:1" json:"quantity"`
	ExpirationDate time.Time `json:"expiration_date"` // item's expiration at event time
	EventAt        time.Time `json:"event_at"`

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}
