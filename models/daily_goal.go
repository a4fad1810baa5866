package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyGoal is a per-date macro target. Dates without a row fall back to the
// user's default targets.
type DailyGoal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD

	Calories float64 // e.g. 2200 kcal
	Protein  float64 // e.g. 120 g
	Carbs    float64 // e.g. 275 g
	Fat      float64 // e.g. 70 g
}
