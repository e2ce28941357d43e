package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID uuid.UUID `json:"couple_id"`
	Name     string    `json:"name"`

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}

type ShoppingItem struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID uuid.UUID  `json:"couple_id"`
	ListID   *uuid.UUID `json:"list_id,omitempty"`
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	Quantity int        `gorm:"default:1" json:"quantity"`
	Picked   bool       `gorm:"default:false" json:"picked"`

	Couple *Couple       `gorm:"foreignKey:CoupleID"`
	List   *ShoppingList `gorm:"foreignKey:ListID"`
	Timestamp
}
