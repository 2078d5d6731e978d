package utils_test

import (
	"math"
	"testing"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/utils"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestCalculateDailyCaloriesKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		gender   string
		weight   float64
		height   float64
		activity string
		goal     string
		want     float64
	}{
		{
			name:   "intermediate male losing weight",
			age:    30, gender: models.GenderMale, weight: 70, height: 175,
			activity: models.ActivityIntermediate, goal: models.GoalLoseWeight,
			want: (10*70+6.25*175-5*30+5)*1.55 - 500,
		},
		{
			name:   "beginner female gaining weight",
			age:    25, gender: models.GenderFemale, weight: 60, height: 165,
			activity: models.ActivityBeginner, goal: models.GoalGainWeight,
			want: (10*60+6.25*165-5*25-161)*1.2 + 500,
		},
		{
			name:   "advanced male muscle mass gain",
			age:    40, gender: models.GenderMale, weight: 85, height: 180,
			activity: models.ActivityAdvanced, goal: models.GoalMuscleMassGain,
			want: (10*85+6.25*180-5*40+5)*1.9 + 500,
		},
		{
			name:   "shape body leaves tdee unchanged",
			age:    30, gender: models.GenderFemale, weight: 55, height: 160,
			activity: models.ActivityIntermediate, goal: models.GoalShapeBody,
			want: (10*55 + 6.25*160 - 5*30 - 161) * 1.55,
		},
		{
			name:   "unknown activity falls back to sedentary",
			age:    30, gender: models.GenderMale, weight: 70, height: 175,
			activity: "Couch Potato", goal: models.GoalOther,
			want: (10*70 + 6.25*175 - 5*30 + 5) * 1.2,
		},
		{
			name:   "unknown goal leaves tdee unchanged",
			age:    30, gender: models.GenderMale, weight: 70, height: 175,
			activity: models.ActivityBeginner, goal: "Bulk Forever",
			want: (10*70 + 6.25*175 - 5*30 + 5) * 1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.CalculateDailyCalories(tt.age, tt.gender, tt.weight, tt.height, tt.activity, tt.goal)
			if !almostEqual(got, tt.want) {
				t.Fatalf("CalculateDailyCalories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateDailyCaloriesMonotonicity(t *testing.T) {
	genders := []string{models.GenderMale, models.GenderFemale}
	activities := []string{models.ActivityBeginner, models.ActivityIntermediate, models.ActivityAdvanced}
	goals := []string{
		models.GoalLoseWeight, models.GoalGainWeight, models.GoalMuscleMassGain,
		models.GoalShapeBody, models.GoalOther,
	}

	for _, gender := range genders {
		for _, activity := range activities {
			for _, goal := range goals {
				base := utils.CalculateDailyCalories(30, gender, 70, 175, activity, goal)

				if heavier := utils.CalculateDailyCalories(30, gender, 75, 175, activity, goal); heavier <= base {
					t.Errorf("%s/%s/%s: goal not increasing in weight: %v <= %v", gender, activity, goal, heavier, base)
				}
				if taller := utils.CalculateDailyCalories(30, gender, 70, 185, activity, goal); taller <= base {
					t.Errorf("%s/%s/%s: goal not increasing in height: %v <= %v", gender, activity, goal, taller, base)
				}
				if older := utils.CalculateDailyCalories(40, gender, 70, 175, activity, goal); older >= base {
					t.Errorf("%s/%s/%s: goal not decreasing in age: %v >= %v", gender, activity, goal, older, base)
				}
			}
		}
	}
}
