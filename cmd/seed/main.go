package main

import (
	"log"

	"github.com/OJESH-DHK/SoupMandu/config"
	"github.com/OJESH-DHK/SoupMandu/models"

	"gorm.io/gorm/clause"
)

type macros struct {
	calories, protein, carbs, fat float64
}

func (m macros) toModel() models.Macros {
	return models.Macros{
		Calories: &m.calories,
		Protein:  &m.protein,
		Carbs:    &m.carbs,
		Fat:      &m.fat,
	}
}

// Per-piece starter values for countable foods.
var countableFoods = map[string]macros{
	"burger":   {450, 20, 45, 20},
	"jeri":     {150, 1.5, 22, 6},
	"momo":     {35, 1.5, 4.5, 1.0},
	"omelette": {180, 12, 2, 14},
	"pakoda":   {70, 2, 8, 4},
	"panipuri": {30, 1, 5, 1},
	"roti":     {120, 3.5, 22, 2.5},
	"samosa":   {260, 6, 28, 14},
	"selroti":  {220, 3, 35, 8},
	"yomari":   {180, 4, 34, 3},
}

// Small/medium/large starter values for portion foods.
var portionFoods = map[string][3]macros{
	"chatamari": {{220, 10, 20, 10}, {320, 14, 28, 14}, {450, 18, 38, 20}},
	"chhoila":   {{180, 18, 4, 10}, {260, 26, 6, 14}, {360, 35, 8, 20}},
	"chiya":     {{60, 2, 7, 3}, {90, 3, 10, 4}, {130, 4, 14, 6}},
	"dalbhat":   {{450, 14, 78, 10}, {650, 20, 110, 14}, {850, 26, 140, 18}},
	"dhindo":    {{250, 6, 52, 2}, {360, 9, 75, 3}, {480, 12, 100, 4}},
	"friedrice": {{380, 10, 55, 14}, {550, 14, 80, 20}, {750, 18, 110, 28}},
	"gundruk":   {{50, 3, 8, 1}, {80, 5, 12, 1}, {120, 7, 18, 2}},
	"kheer":     {{220, 6, 35, 6}, {320, 8, 50, 9}, {430, 11, 65, 12}},
	"pizza":     {{250, 10, 28, 11}, {450, 18, 50, 20}, {650, 26, 72, 28}},
	"sekuwa":    {{220, 22, 2, 14}, {320, 32, 3, 20}, {450, 45, 4, 28}},
}

var tierOrder = [3]models.PortionSize{models.SizeSmall, models.SizeMedium, models.SizeLarge}

func seedFood(name string, portionType models.PortionType) (*models.FoodItem, error) {
	food := models.FoodItem{Name: name, PortionType: portionType, IsActive: true}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"portion_type", "is_active"}),
	}).Create(&food).Error
	if err != nil {
		return nil, err
	}
	// OnConflict does not refill the ID on an update path
	if err := config.DB.Where("name = ?", name).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func seedNutrition(food *models.FoodItem, fill func(n *models.FoodNutrition)) error {
	var nutrition models.FoodNutrition
	err := config.DB.Where("food_item_id = ?", food.ID).
		FirstOrCreate(&nutrition, models.FoodNutrition{FoodItemID: food.ID}).Error
	if err != nil {
		return err
	}
	fill(&nutrition)
	return config.DB.Save(&nutrition).Error
}

func main() {
	config.InitDB()

	seeded := 0
	for name, perPiece := range countableFoods {
		food, err := seedFood(name, models.PortionCountable)
		if err != nil {
			log.Fatalf("seed %s: %v", name, err)
		}
		err = seedNutrition(food, func(n *models.FoodNutrition) {
			n.SetPerPiece(perPiece.toModel())
		})
		if err != nil {
			log.Fatalf("seed nutrition %s: %v", name, err)
		}
		seeded++
	}

	for name, tiers := range portionFoods {
		food, err := seedFood(name, models.PortionSized)
		if err != nil {
			log.Fatalf("seed %s: %v", name, err)
		}
		err = seedNutrition(food, func(n *models.FoodNutrition) {
			for i, size := range tierOrder {
				n.SetTier(size, tiers[i].toModel())
			}
		})
		if err != nil {
			log.Fatalf("seed nutrition %s: %v", name, err)
		}
		seeded++
	}

	log.Printf("seeded %d foods", seeded)
}
