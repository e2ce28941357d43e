package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email       string     `gorm:"uniqueIndex" json:"email"`
	Password    string     `json:"-"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	CoupleID    *uuid.UUID `json:"couple_id,omitempty"`

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}
