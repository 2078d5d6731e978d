package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	ActivityBeginner     = "Beginner"
	ActivityIntermediate = "Intermediate"
	ActivityAdvanced     = "Advanced"
)

const (
	GoalLoseWeight     = "Lose Weight"
	GoalGainWeight     = "Gain Weight"
	GoalMuscleMassGain = "Muscle Mass Gain"
	GoalShapeBody      = "Shape Body"
	GoalOther          = "Other"
)

// UserProfile holds the metabolic inputs a user signs up with, the calorie
// goal derived from them, and the running daily counter. DailyCalorieGoal is
// nil until first computed and must be recomputed whenever any input changes.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	Age           int     `gorm:"not null"`
	Gender        string  `gorm:"size:10;not null"`
	WeightKg      float64 `gorm:"not null"`
	HeightCm      float64 `gorm:"not null"`
	ActivityLevel string  `gorm:"size:20;not null"`
	Goal          string  `gorm:"size:30;not null"`

	DailyCalorieGoal *float64

	// Daily budget state. CaloriesConsumedToday is only meaningful when
	// LastResetDate is today; every access goes through the budget service,
	// which resets stale state first.
	CaloriesConsumedToday float64   `gorm:"not null;default:0"`
	LastResetDate         time.Time `gorm:"not null"`
}

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidActivityLevel reports whether a is a known activity level. An unknown
// level is still accepted by the calorie calculator (it falls back to
// sedentary); this is only for signup validation.
func ValidActivityLevel(a string) bool {
	switch a {
	case ActivityBeginner, ActivityIntermediate, ActivityAdvanced:
		return true
	}
	return false
}

// ValidGoal reports whether g is a known fitness goal.
func ValidGoal(g string) bool {
	switch g {
	case GoalLoseWeight, GoalGainWeight, GoalMuscleMassGain, GoalShapeBody, GoalOther:
		return true
	}
	return false
}
