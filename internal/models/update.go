package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Update is one raw free-text submission. The tasks parsed out of it
// reference it through UpdateID.
type Update struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	RawText   string    `gorm:"not null" json:"raw_text"`
	Date      time.Time `gorm:"not null" json:"date"` // start-of-day instant for the target calendar day
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  TeamMember `gorm:"foreignKey:UserID" json:"-"`
	Tasks []Task     `gorm:"foreignKey:UpdateID" json:"tasks,omitempty"`
}

func (u *Update) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
