package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal. Nutrition totals live directly on the row so date-range
// queries feed the statistics engine without joins.
type Meal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Period string    `gorm:"size:16"` // breakfast|lunch|dinner|snack|late_night
	AteAt  time.Time `gorm:"index;not null"`

	Name     string
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g

	PhotoURL string // S3 URL when the meal was logged from a photo scan
}
