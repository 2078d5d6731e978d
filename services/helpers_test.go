package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/OJESH-DHK/SoupMandu/config"
	"github.com/OJESH-DHK/SoupMandu/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fp(v float64) *float64 { return &v }

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// createUser inserts a user whose profile has the given goal (nil for a user
// who never computed one).
func createUser(t *testing.T, db *gorm.DB, goal *float64) *models.User {
	t.Helper()
	user := &models.User{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "not-a-real-hash",
		Profile: models.UserProfile{
			Age:              30,
			Gender:           models.GenderMale,
			WeightKg:         70,
			HeightCm:         175,
			ActivityLevel:    models.ActivityIntermediate,
			Goal:             models.GoalLoseWeight,
			DailyCalorieGoal: goal,
			LastResetDate:    startOfToday(),
		},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// seedCountable inserts a COUNTABLE food with the given per-piece macros.
func seedCountable(t *testing.T, db *gorm.DB, name string, perPiece models.Macros) *models.FoodItem {
	t.Helper()
	food := &models.FoodItem{Name: name, PortionType: models.PortionCountable, IsActive: true}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("create food: %v", err)
	}
	nutrition := &models.FoodNutrition{FoodItemID: food.ID}
	nutrition.SetPerPiece(perPiece)
	if err := db.Create(nutrition).Error; err != nil {
		t.Fatalf("create nutrition: %v", err)
	}
	return food
}

// seedPortion inserts a PORTION food whose medium and large tiers are 2x and
// 3x the small macros.
func seedPortion(t *testing.T, db *gorm.DB, name string, small models.Macros) *models.FoodItem {
	t.Helper()
	food := &models.FoodItem{Name: name, PortionType: models.PortionSized, IsActive: true}
	if err := db.Create(food).Error; err != nil {
		t.Fatalf("create food: %v", err)
	}

	scale := func(m models.Macros, factor float64) models.Macros {
		mul := func(v *float64) *float64 {
			if v == nil {
				return nil
			}
			scaled := *v * factor
			return &scaled
		}
		return models.Macros{
			Calories: mul(m.Calories), Protein: mul(m.Protein),
			Carbs: mul(m.Carbs), Fat: mul(m.Fat),
		}
	}

	nutrition := &models.FoodNutrition{FoodItemID: food.ID}
	nutrition.SetTier(models.SizeSmall, small)
	nutrition.SetTier(models.SizeMedium, scale(small, 2))
	nutrition.SetTier(models.SizeLarge, scale(small, 3))
	if err := db.Create(nutrition).Error; err != nil {
		t.Fatalf("create nutrition: %v", err)
	}
	return food
}

func loadProfile(t *testing.T, db *gorm.DB, userID uint) *models.UserProfile {
	t.Helper()
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	return &profile
}
