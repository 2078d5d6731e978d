package services

import (
	"fmt"
	"time"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db        *gorm.DB
	foodSvc   *FoodService
	budgetSvc *BudgetService
}

func NewMealService(db *gorm.DB, foodSvc *FoodService, budgetSvc *BudgetService) *MealService {
	return &MealService{db: db, foodSvc: foodSvc, budgetSvc: budgetSvc}
}

// EatRequest is one confirmed eat action. Exactly one of Pieces and Size is
// expected; which one is valid depends on the food's portion type.
type EatRequest struct {
	Food       string   `json:"food" binding:"required"`
	Pieces     *float64 `json:"pieces"`
	Size       *string  `json:"size"`
	Confidence float64  `json:"confidence"`
}

// Eat logs a confirmed meal: resolves the food, computes the nutrition
// snapshot, then appends the log entry and bumps the daily budget in one
// transaction, so a crash never leaves a logged meal uncounted or a counted
// meal unlogged.
func (s *MealService) Eat(userID uint, req EatRequest) (*models.MealLog, error) {
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence must be between 0 and 1", models.ErrValidation)
	}

	food, err := s.foodSvc.FindActiveFood(req.Food)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.foodSvc.GetNutrition(food)
	if err != nil {
		return nil, err
	}

	size, err := parseSize(req.Size)
	if err != nil {
		return nil, err
	}

	result, err := utils.ComputeNutrition(food, nutrition, req.Pieces, size)
	if err != nil {
		return nil, err
	}

	entry := &models.MealLog{
		UserID:     userID,
		FoodItemID: food.ID,
		Confidence: req.Confidence,
		Unit:       result.Unit,
		Quantity:   result.Quantity,
		Size:       result.Size,
		Calories:   result.Calories,
		Protein:    result.Protein,
		Carbs:      result.Carbs,
		Fat:        result.Fat,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return s.budgetSvc.AddCalories(tx, userID, result.Calories)
	})
	if err != nil {
		return nil, err
	}

	entry.FoodItem = *food
	return entry, nil
}

// LogFilter narrows a log listing. At most one of Today, Date and the
// StartDate/EndDate pair is honored, checked in that order. Dates are
// YYYY-MM-DD; anything else is a validation error.
type LogFilter struct {
	Today     bool
	Date      string
	StartDate string
	EndDate   string
}

const dateLayout = "2006-01-02"

func parseDate(value, field string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", models.ErrValidation, field, value)
	}
	return t, nil
}

// window converts the filter into a [from, to) interval. Nil bounds mean
// unbounded.
func (f LogFilter) window() (from, to *time.Time, err error) {
	switch {
	case f.Today:
		start := startOfDay(time.Now())
		end := start.Add(24 * time.Hour)
		return &start, &end, nil

	case f.Date != "":
		day, err := parseDate(f.Date, "date")
		if err != nil {
			return nil, nil, err
		}
		end := day.Add(24 * time.Hour)
		return &day, &end, nil

	case f.StartDate != "" || f.EndDate != "":
		if f.StartDate != "" {
			day, err := parseDate(f.StartDate, "start_date")
			if err != nil {
				return nil, nil, err
			}
			from = &day
		}
		if f.EndDate != "" {
			day, err := parseDate(f.EndDate, "end_date")
			if err != nil {
				return nil, nil, err
			}
			end := day.Add(24 * time.Hour)
			to = &end
		}
		return from, to, nil
	}
	return nil, nil, nil
}

// ListLogs returns the user's meal log entries, newest first.
func (s *MealService) ListLogs(userID uint, filter LogFilter) ([]models.MealLog, error) {
	from, to, err := filter.window()
	if err != nil {
		return nil, err
	}

	q := s.db.
		Preload("FoodItem").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}

	var logs []models.MealLog
	err = q.Find(&logs).Error
	return logs, err
}
