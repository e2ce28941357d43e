package entities

import (
	"time"

	"github.com/google/uuid"
)

type TaskList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID uuid.UUID `json:"couple_id"`
	Name     string    `json:"name"`

	Couple *Couple `gorm:"foreignKey:CoupleID"`
	Timestamp
}

type Task struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoupleID         uuid.UUID  `json:"couple_id"`
	ListID           *uuid.UUID `json:"list_id,omitempty"`
	Title            string     `json:"title"`
	Done             bool       `gorm:"default:false" json:"done"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	Category         string     `json:"category,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	IsRoutine        bool       `gorm:"default:false" json:"is_routine"`
	RoutineEveryDays *int       `json:"routine_every_days,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`

	Couple *Couple   `gorm:"foreignKey:CoupleID"`
	List   *TaskList `gorm:"foreignKey:ListID"`
	Timestamp
}
