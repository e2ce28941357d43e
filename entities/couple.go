package entities

import (
	"github.com/google/uuid"
)

type Couple struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `gorm:"uniqueIndex" json:"invite_code"`

	Members []*User `gorm:"foreignKey:CoupleID"`
	Timestamp
}
