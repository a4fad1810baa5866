package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterIntake struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	AmountMl int
}
