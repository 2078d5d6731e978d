package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"gorm.io/gorm"
)

// BudgetService owns the per-user daily calorie counter. The counter resets
// lazily: every read or write first checks whether last_reset_date is still
// today and zeroes the counter if not. The reset is a single conditional
// UPDATE and the increment a single SQL expression, so concurrent eats by the
// same user never lose an update and the midnight race resolves to one reset.
type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// DailySummary is the snapshot returned by the summary endpoint.
type DailySummary struct {
	DailyCalorieGoal   *float64 `json:"daily_calorie_goal"`
	CaloriesConsumed   float64  `json:"calories_consumed_today"`
	CaloriesRemaining  float64  `json:"calories_remaining"`
	PercentageConsumed float64  `json:"percentage_consumed"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResetIfNeeded zeroes the counter when the stored reset date is not today.
// Idempotent and safe to call redundantly; the date comparison happens inside
// the UPDATE's WHERE clause, so two racing callers produce one reset.
func (s *BudgetService) ResetIfNeeded(userID uint) error {
	return resetIfNeeded(s.db, userID)
}

func resetIfNeeded(tx *gorm.DB, userID uint) error {
	today := startOfDay(time.Now())
	return tx.Model(&models.UserProfile{}).
		Where("user_id = ? AND last_reset_date <> ?", userID, today).
		Updates(map[string]interface{}{
			"calories_consumed_today": 0,
			"last_reset_date":         today,
		}).Error
}

// AddCalories adds an eaten meal's calories to today's total. Runs against tx
// so the caller can make it atomic with the meal-log append. The increment is
// pushed down to SQL; there is no read-modify-write in Go.
func (s *BudgetService) AddCalories(tx *gorm.DB, userID uint, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: calorie amount must be non-negative", models.ErrValidation)
	}
	if err := resetIfNeeded(tx, userID); err != nil {
		return err
	}
	res := tx.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Update("calories_consumed_today", gorm.Expr("calories_consumed_today + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile for user %d", models.ErrNotFound, userID)
	}
	return nil
}

// Remaining returns goal minus consumed for today. A profile without a
// computed goal is a valid state and yields 0, not an error.
func (s *BudgetService) Remaining(userID uint) (float64, error) {
	profile, err := s.loadFresh(userID)
	if err != nil {
		return 0, err
	}
	return remaining(profile), nil
}

// Summary returns goal, consumed, remaining and percentage for today.
func (s *BudgetService) Summary(userID uint) (*DailySummary, error) {
	profile, err := s.loadFresh(userID)
	if err != nil {
		return nil, err
	}
	// Stored totals stay unrounded; rounding here is presentation only.
	return &DailySummary{
		DailyCalorieGoal:   profile.DailyCalorieGoal,
		CaloriesConsumed:   utils.Round2(profile.CaloriesConsumedToday),
		CaloriesRemaining:  utils.Round2(remaining(profile)),
		PercentageConsumed: utils.Round2(percentageConsumed(profile)),
	}, nil
}

// loadFresh resets stale state, then reloads the profile.
func (s *BudgetService) loadFresh(userID uint) (*models.UserProfile, error) {
	if err := resetIfNeeded(s.db, userID); err != nil {
		return nil, err
	}
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %d", models.ErrNotFound, userID)
		}
		return nil, err
	}
	return &profile, nil
}

func remaining(p *models.UserProfile) float64 {
	if p.DailyCalorieGoal == nil {
		return 0
	}
	return *p.DailyCalorieGoal - p.CaloriesConsumedToday
}

func percentageConsumed(p *models.UserProfile) float64 {
	if p.DailyCalorieGoal == nil || *p.DailyCalorieGoal == 0 {
		return 0
	}
	return p.CaloriesConsumedToday / *p.DailyCalorieGoal * 100
}
