package models

import "gorm.io/gorm"

// A catalog entry used to turn scan labels into nutrition estimates.
// Macro values are per 100 g.
type FoodItem struct {
	gorm.Model
	Label    string `gorm:"uniqueIndex;not null"`
	Category string

	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}
