package models

import (
	"strings"

	"gorm.io/gorm"
)

type PortionType string

const (
	// PortionCountable scales nutrition linearly with a piece count.
	PortionCountable PortionType = "COUNTABLE"
	// PortionSized serves nutrition as one of three fixed tiers (S/M/L).
	PortionSized PortionType = "PORTION"
)

type PortionSize string

const (
	SizeSmall  PortionSize = "small"
	SizeMedium PortionSize = "medium"
	SizeLarge  PortionSize = "large"
)

// ParsePortionSize validates a user-supplied size string.
func ParsePortionSize(s string) (PortionSize, bool) {
	switch PortionSize(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return PortionSize(s), true
	}
	return "", false
}

// FoodItem is a catalog entry the classifier labels resolve against.
// Names are unique and stored lowercase.
type FoodItem struct {
	gorm.Model
	Name        string      `gorm:"type:varchar(120);uniqueIndex;not null"`
	PortionType PortionType `gorm:"size:20;not null"`
	IsActive    bool        `gorm:"not null;default:true"`

	Nutrition FoodNutrition
}

func (f *FoodItem) BeforeSave(tx *gorm.DB) error {
	f.Name = strings.ToLower(strings.TrimSpace(f.Name))
	return nil
}

// Macros is one set of macro-nutrient values. Nil fields are unset in the
// catalog and count as zero when resolving.
type Macros struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// FoodNutrition stores either the per-piece macros (COUNTABLE foods) or the
// three size tiers (PORTION foods). The resolver only ever reads the fields
// matching the food's portion type.
type FoodNutrition struct {
	gorm.Model
	FoodItemID uint `gorm:"uniqueIndex;not null"`

	// COUNTABLE (per piece)
	CaloriesPerPiece *float64
	ProteinPerPiece  *float64
	CarbsPerPiece    *float64
	FatPerPiece      *float64

	// PORTION (small/medium/large)
	CaloriesSmall *float64
	ProteinSmall  *float64
	CarbsSmall    *float64
	FatSmall      *float64

	CaloriesMedium *float64
	ProteinMedium  *float64
	CarbsMedium    *float64
	FatMedium      *float64

	CaloriesLarge *float64
	ProteinLarge  *float64
	CarbsLarge    *float64
	FatLarge      *float64
}

// PerPiece returns the per-piece macros for a COUNTABLE food.
func (n *FoodNutrition) PerPiece() Macros {
	return Macros{
		Calories: n.CaloriesPerPiece,
		Protein:  n.ProteinPerPiece,
		Carbs:    n.CarbsPerPiece,
		Fat:      n.FatPerPiece,
	}
}

// Tier returns the macros stored for one size tier of a PORTION food. The
// mapping is exhaustive over the three sizes; an unknown size returns false.
func (n *FoodNutrition) Tier(size PortionSize) (Macros, bool) {
	switch size {
	case SizeSmall:
		return Macros{n.CaloriesSmall, n.ProteinSmall, n.CarbsSmall, n.FatSmall}, true
	case SizeMedium:
		return Macros{n.CaloriesMedium, n.ProteinMedium, n.CarbsMedium, n.FatMedium}, true
	case SizeLarge:
		return Macros{n.CaloriesLarge, n.ProteinLarge, n.CarbsLarge, n.FatLarge}, true
	}
	return Macros{}, false
}

// SetPerPiece overwrites the per-piece macros.
func (n *FoodNutrition) SetPerPiece(m Macros) {
	n.CaloriesPerPiece = m.Calories
	n.ProteinPerPiece = m.Protein
	n.CarbsPerPiece = m.Carbs
	n.FatPerPiece = m.Fat
}

// SetTier overwrites one size tier.
func (n *FoodNutrition) SetTier(size PortionSize, m Macros) {
	switch size {
	case SizeSmall:
		n.CaloriesSmall, n.ProteinSmall, n.CarbsSmall, n.FatSmall = m.Calories, m.Protein, m.Carbs, m.Fat
	case SizeMedium:
		n.CaloriesMedium, n.ProteinMedium, n.CarbsMedium, n.FatMedium = m.Calories, m.Protein, m.Carbs, m.Fat
	case SizeLarge:
		n.CaloriesLarge, n.ProteinLarge, n.CarbsLarge, n.FatLarge = m.Calories, m.Protein, m.Carbs, m.Fat
	}
}
