package utils

import "github.com/OJESH-DHK/SoupMandu/models"

// Activity multipliers applied to BMR. An unknown activity level falls back
// to the sedentary multiplier instead of failing; signup validates levels, but
// older rows may carry values this table no longer knows.
const (
	multiplierSedentary    = 1.2
	multiplierIntermediate = 1.55
	multiplierAdvanced     = 1.9
)

// Calorie adjustment applied on top of TDEE for weight-change goals.
const goalCalorieDelta = 500

// CalculateDailyCalories derives a daily calorie target from metabolic
// inputs using the Mifflin-St Jeor equation:
//
//	BMR  = 10*weight + 6.25*height - 5*age + 5   (male)
//	BMR  = 10*weight + 6.25*height - 5*age - 161 (female)
//	TDEE = BMR * activity multiplier
//
// then shifts TDEE by 500 kcal down for Lose Weight, up for Gain Weight and
// Muscle Mass Gain, and leaves it unchanged otherwise. Weight is in kilograms,
// height in centimeters. Every branch has a defined fallback, so there is no
// error return; the caller persists the result.
func CalculateDailyCalories(age int, gender string, weightKg, heightCm float64, activityLevel, goal string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier := multiplierSedentary
	switch activityLevel {
	case models.ActivityIntermediate:
		multiplier = multiplierIntermediate
	case models.ActivityAdvanced:
		multiplier = multiplierAdvanced
	}

	tdee := bmr * multiplier

	switch goal {
	case models.GoalLoseWeight:
		return tdee - goalCalorieDelta
	case models.GoalGainWeight, models.GoalMuscleMassGain:
		return tdee + goalCalorieDelta
	}
	return tdee
}
