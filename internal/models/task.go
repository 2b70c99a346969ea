package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	UpdateID    string         `gorm:"not null;index" json:"update_id"`
	UserID      string         `gorm:"not null;index" json:"user_id"`
	ProjectID   string         `gorm:"not null;index" json:"project_id"`
	Description string         `gorm:"not null" json:"description"`
	Status      string         `gorm:"not null;default:todo" json:"status"`
	Mentioned   datatypes.JSON `gorm:"column:mentioned_users" json:"mentioned_users"`
	DueDate     *time.Time     `json:"due_date"`
	// CreatedAt is set explicitly to the start of the task's target
	// calendar day, not the literal submission instant. Truncated to a
	// UTC day it decides which day the task displays under.
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User    TeamMember `gorm:"foreignKey:UserID" json:"user"`
	Project Project    `gorm:"foreignKey:ProjectID" json:"project"`

	// IsCarriedOver marks an unfinished task from the previous day
	// surfaced while viewing tomorrow. Display-only, never stored.
	IsCarriedOver bool `gorm:"-" json:"is_carried_over,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
