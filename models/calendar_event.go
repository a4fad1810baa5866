package models

import (
	"time"

	"gorm.io/gorm"
)

type CalendarEvent struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"index;not null"`
	Title       string    `gorm:"not null"`
	Type        string    `gorm:"size:32"` // "goal" | "reminder" | "note"
	Description string    `gorm:"type:text"`
}
