package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"gorm.io/gorm"
)

// FoodService is the read-only catalog plus the recognition entry point.
type FoodService struct {
	db         *gorm.DB
	classifier Classifier
}

func NewFoodService(db *gorm.DB, classifier Classifier) *FoodService {
	return &FoodService{db: db, classifier: classifier}
}

// RecognitionResult is what a submitted meal photo resolves to.
type RecognitionResult struct {
	Food       string  `json:"food"`
	Confidence float64 `json:"confidence"`
	PhotoURL   string  `json:"photo_url,omitempty"`
}

// Recognize uploads the photo, then classifies it. The upload happens first
// so a classified meal always has its source image stored.
func (s *FoodService) Recognize(userID uint, imageDataURI string) (*RecognitionResult, error) {
	data, contentType, err := utils.DecodeDataURI(imageDataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	photoURL, err := utils.UploadMealPhoto(data, contentType, userID)
	if err != nil {
		return nil, err
	}

	label, confidence, err := s.classifier.ClassifyFood(data)
	if err != nil {
		return nil, err
	}

	return &RecognitionResult{
		Food:       label,
		Confidence: utils.Round2(confidence*100) / 100, // 0..1, reported to 4 decimals
		PhotoURL:   photoURL,
	}, nil
}

// FindActiveFood resolves a catalog entry by its lowercase name.
func (s *FoodService) FindActiveFood(name string) (*models.FoodItem, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var food models.FoodItem
	err := s.db.Where("name = ? AND is_active = ?", name, true).First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %q", models.ErrNotFound, name)
		}
		return nil, err
	}
	return &food, nil
}

// GetNutrition loads the nutrition record for a catalog entry.
func (s *FoodService) GetNutrition(food *models.FoodItem) (*models.FoodNutrition, error) {
	var nutrition models.FoodNutrition
	err := s.db.Where("food_item_id = ?", food.ID).First(&nutrition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: nutrition for food %q", models.ErrNotFound, food.Name)
		}
		return nil, err
	}
	return &nutrition, nil
}

// ComputeNutrition resolves macro totals for a named food and quantity
// without logging anything. Backs the nutrition-preview endpoint.
func (s *FoodService) ComputeNutrition(name string, pieces *float64, size *string) (*utils.NutritionResult, error) {
	food, err := s.FindActiveFood(name)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.GetNutrition(food)
	if err != nil {
		return nil, err
	}

	portionSize, err := parseSize(size)
	if err != nil {
		return nil, err
	}

	return utils.ComputeNutrition(food, nutrition, pieces, portionSize)
}

func parseSize(size *string) (*models.PortionSize, error) {
	if size == nil || *size == "" {
		return nil, nil
	}
	parsed, ok := models.ParsePortionSize(strings.ToLower(strings.TrimSpace(*size)))
	if !ok {
		return nil, fmt.Errorf("%w: size must be one of small, medium, large", models.ErrInvalidQuantity)
	}
	return &parsed, nil
}
