package entities

import (
	"time"

	"github.com/google/uuid"
)

type EmotionEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID   uuid.UUID  `json:"couple_id"`
	CreatedBy  *uuid.UUID `json:"created_by,omitempty"`
	Mood       int        `json:"mood"` // 1..5
	Emotion    string     `json:"emotion,omitempty"`
	Tags       string     `gorm:"type:text" json:"tags,omitempty"` // comma separated
	Note       string     `json:"note,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}
