package entities

import (
	"time"

	"github.com/google/uuid"
)

type MenstruationPeriod struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProfileID uuid.UUID  `json:"profile_id"`
	CoupleID  *uuid.UUID `json:"couple_id,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil means the cycle is still open
	FlowLevel *int       `json:"flow_level,omitempty"`
	Title     string     `json:"title,omitempty"`
	Notes     string     `json:"notes,omitempty"`

	Profile  *User                  `gorm:"foreignKey:ProfileID"`
	Symptoms []*MenstruationSymptom `gorm:"foreignKey:PeriodID"`
	Timestamp
}

type MenstruationSymptom struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PeriodID    uuid.UUID `json:"period_id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	SymptomType string    `json:"symptom_type"`
	Intensity   *int      `json:"intensity,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	OccurredAt  time.Time `gorm:"autoCreateTime" json:"occurred_at"`

	Period *MenstruationPeriod `gorm:"foreignKey:PeriodID"`
	Timestamp
}
