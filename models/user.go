package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	AvatarURL string

	Birthday time.Time
	Height   float64 // cm
	Weight   float64 // kg

	// Daily targets used when a date has no DailyGoal row of its own.
	DefaultCalories float64 `gorm:"default:2000"`
	DefaultProtein  float64 `gorm:"default:150"`
	DefaultCarbs    float64 `gorm:"default:250"`
	DefaultFat      float64 `gorm:"default:65"`

	// Lifetime counters shown on the profile screen.
	TotalMealsLogged int
	TotalDaysTracked int

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
}
