package services_test

import (
	"errors"
	"math"
	"testing"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/services"

	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *services.UserService {
	return services.NewUserService(db, services.NewBudgetService(db))
}

func signupProfile() services.ProfileInput {
	return services.ProfileInput{
		Age:           25,
		Gender:        models.GenderFemale,
		WeightKg:      60,
		HeightCm:      165,
		ActivityLevel: models.ActivityBeginner,
		Goal:          models.GoalGainWeight,
	}
}

func TestSignupComputesDailyCalorieGoal(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)

	user, err := users.Signup("ojesh", "ojesh@example.com", "supersecret", signupProfile())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	want := (10*60+6.25*165-5*25-161)*1.2 + 500
	if user.Profile.DailyCalorieGoal == nil {
		t.Fatal("goal not computed at signup")
	}
	if math.Abs(*user.Profile.DailyCalorieGoal-want) > 0.005 {
		t.Fatalf("goal = %v, want %v", *user.Profile.DailyCalorieGoal, want)
	}
}

func TestSignupHashesPassword(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)

	user, err := users.Signup("ojesh", "ojesh@example.com", "supersecret", signupProfile())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Password == "supersecret" {
		t.Fatal("password stored in plaintext")
	}

	if _, err := users.Authenticate("ojesh@example.com", "supersecret"); err != nil {
		t.Fatalf("authenticate with correct password: %v", err)
	}
	if _, err := users.Authenticate("ojesh@example.com", "wrong"); err == nil {
		t.Fatal("authenticate with wrong password should fail")
	}
}

func TestSignupRejectsBadEnums(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)

	for name, mutate := range map[string]func(*services.ProfileInput){
		"gender":   func(p *services.ProfileInput) { p.Gender = "Robot" },
		"activity": func(p *services.ProfileInput) { p.ActivityLevel = "Olympian" },
		"goal":     func(p *services.ProfileInput) { p.Goal = "Immortality" },
	} {
		t.Run(name, func(t *testing.T) {
			profile := signupProfile()
			mutate(&profile)
			_, err := users.Signup("u", "u@example.com", "supersecret", profile)
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestUpdateProfileRecomputesGoal(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)

	user, err := users.Signup("ojesh", "ojesh@example.com", "supersecret", signupProfile())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	updated := signupProfile()
	updated.WeightKg = 70
	updated.Goal = models.GoalLoseWeight

	resp, err := users.UpdateProfile(user.ID, updated)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := (10*70+6.25*165-5*25-161)*1.2 - 500
	if resp.DailyCalorieGoal == nil {
		t.Fatal("goal missing after update")
	}
	if math.Abs(*resp.DailyCalorieGoal-want) > 0.005 {
		t.Fatalf("goal = %v, want %v after update", *resp.DailyCalorieGoal, want)
	}
}

func TestUpdateProfilePreservesConcurrentBudgetWrites(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)

	user, err := users.Signup("ojesh", "ojesh@example.com", "supersecret", signupProfile())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Simulate an eat that commits between UpdateProfile's load and its
	// write: bump the counter right before the profile UPDATE runs.
	applied := false
	err = db.Callback().Update().Before("gorm:update").Register("interleaved_eat", func(tx *gorm.DB) {
		if applied {
			return
		}
		applied = true
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"UPDATE user_profiles SET calories_consumed_today = calories_consumed_today + ? WHERE user_id = ?",
			500.0, user.ID,
		)
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	if _, err := users.UpdateProfile(user.ID, signupProfile()); err != nil {
		t.Fatalf("update: %v", err)
	}

	profile := loadProfile(t, db, user.ID)
	if profile.CaloriesConsumedToday != 500 {
		t.Fatalf("consumed = %v, want 500 (interleaved add must survive the profile update)",
			profile.CaloriesConsumedToday)
	}
}

func TestGetProfileIncludesBudgetAndBMI(t *testing.T) {
	db := newTestDB(t)
	users := newUserService(db)
	budget := services.NewBudgetService(db)

	user, err := users.Signup("ojesh", "ojesh@example.com", "supersecret", signupProfile())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := budget.AddCalories(db, user.ID, 300); err != nil {
		t.Fatalf("add: %v", err)
	}

	resp, err := users.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if resp.CaloriesConsumedToday != 300 {
		t.Errorf("consumed = %v, want 300", resp.CaloriesConsumedToday)
	}
	wantRemaining := *resp.DailyCalorieGoal - 300
	if math.Abs(resp.CaloriesRemaining-wantRemaining) > 0.005 {
		t.Errorf("remaining = %v, want %v", resp.CaloriesRemaining, wantRemaining)
	}
	if resp.BMI == nil {
		t.Fatal("bmi missing")
	}
	// 60kg at 1.65m
	if math.Abs(*resp.BMI-22.04) > 0.01 {
		t.Errorf("bmi = %v, want about 22.04", *resp.BMI)
	}
}
