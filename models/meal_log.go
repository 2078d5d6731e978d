package models

import (
	"gorm.io/gorm"
)

// MealLog is one eaten-food event with the nutrition snapshot resolved at
// creation time. Entries are append-only; totals are never recomputed when
// the catalog changes later.
type MealLog struct {
	gorm.Model
	UserID     uint `gorm:"index;not null"`
	FoodItemID uint `gorm:"index;not null"`
	FoodItem   FoodItem

	Confidence float64 // classifier confidence, 0..1

	// Unit is "piece" for countable foods (Quantity set) and "portion" for
	// sized foods (Size set).
	Unit     string       `gorm:"size:10;not null"`
	Quantity *float64
	Size     *PortionSize `gorm:"size:10"`

	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Carbs    float64 `gorm:"not null"`
	Fat      float64 `gorm:"not null"`
}
