package utils

import (
	"fmt"
	"math"

	"github.com/OJESH-DHK/SoupMandu/models"
)

// NutritionResult is a resolved macro total for one quantity of one food.
// Values are unrounded; rounding happens only when rendering a response so
// that accumulated totals never compound pre-rounded values.
type NutritionResult struct {
	Unit     string              `json:"unit"`
	Quantity *float64            `json:"quantity,omitempty"`
	Size     *models.PortionSize `json:"size,omitempty"`
	Calories float64             `json:"calories"`
	Protein  float64             `json:"protein"`
	Carbs    float64             `json:"carbs"`
	Fat      float64             `json:"fat"`
}

// ComputeNutrition resolves macro totals for a quantity of food. Dispatch is
// entirely on the food's portion type: COUNTABLE foods need a positive piece
// count, PORTION foods need a small/medium/large size. Unset catalog macros
// count as zero. The function is pure; it never touches the store.
func ComputeNutrition(food *models.FoodItem, nutrition *models.FoodNutrition, pieces *float64, size *models.PortionSize) (*NutritionResult, error) {
	switch food.PortionType {
	case models.PortionCountable:
		if pieces == nil || *pieces <= 0 {
			return nil, fmt.Errorf("%w: pieces must be a positive number for countable food %q", models.ErrInvalidQuantity, food.Name)
		}
		per := nutrition.PerPiece()
		return &NutritionResult{
			Unit:     "piece",
			Quantity: pieces,
			Calories: orZero(per.Calories) * *pieces,
			Protein:  orZero(per.Protein) * *pieces,
			Carbs:    orZero(per.Carbs) * *pieces,
			Fat:      orZero(per.Fat) * *pieces,
		}, nil

	case models.PortionSized:
		if size == nil {
			return nil, fmt.Errorf("%w: size (small/medium/large) is required for portion food %q", models.ErrInvalidQuantity, food.Name)
		}
		tier, ok := nutrition.Tier(*size)
		if !ok {
			return nil, fmt.Errorf("%w: unknown size %q", models.ErrInvalidQuantity, *size)
		}
		return &NutritionResult{
			Unit:     "portion",
			Size:     size,
			Calories: orZero(tier.Calories),
			Protein:  orZero(tier.Protein),
			Carbs:    orZero(tier.Carbs),
			Fat:      orZero(tier.Fat),
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", models.ErrInvalidPortionType, food.PortionType)
}

// Round2 rounds to two decimals. Presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
