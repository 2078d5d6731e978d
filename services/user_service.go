package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	budget *BudgetService
}

func NewUserService(db *gorm.DB, budget *BudgetService) *UserService {
	return &UserService{db: db, budget: budget}
}

type ProfileInput struct {
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required"`
	WeightKg      float64 `json:"weight" binding:"required,gt=0"`
	HeightCm      float64 `json:"height" binding:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

func (in ProfileInput) validate() error {
	if !models.ValidGender(in.Gender) {
		return fmt.Errorf("%w: gender must be Male or Female", models.ErrValidation)
	}
	if !models.ValidActivityLevel(in.ActivityLevel) {
		return fmt.Errorf("%w: unknown activity level %q", models.ErrValidation, in.ActivityLevel)
	}
	if !models.ValidGoal(in.Goal) {
		return fmt.Errorf("%w: unknown goal %q", models.ErrValidation, in.Goal)
	}
	return nil
}

// ProfileResponse is the profile as the API reports it, including the lazily
// reset daily counter and the derived remaining budget.
type ProfileResponse struct {
	Age                   int      `json:"age"`
	Gender                string   `json:"gender"`
	WeightKg              float64  `json:"weight"`
	HeightCm              float64  `json:"height"`
	ActivityLevel         string   `json:"activity_level"`
	Goal                  string   `json:"goal"`
	DailyCalorieGoal      *float64 `json:"daily_calorie_goal"`
	CaloriesConsumedToday float64  `json:"calories_consumed_today"`
	CaloriesRemaining     float64  `json:"calories_remaining"`
	BMI                   *float64 `json:"bmi,omitempty"`
	BMICategory           string   `json:"bmi_category,omitempty"`
}

func profileResponse(p *models.UserProfile) *ProfileResponse {
	resp := &ProfileResponse{
		Age:                   p.Age,
		Gender:                p.Gender,
		WeightKg:              p.WeightKg,
		HeightCm:              p.HeightCm,
		ActivityLevel:         p.ActivityLevel,
		Goal:                  p.Goal,
		DailyCalorieGoal:      p.DailyCalorieGoal,
		CaloriesConsumedToday: utils.Round2(p.CaloriesConsumedToday),
		CaloriesRemaining:     utils.Round2(remaining(p)),
	}
	if bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		rounded := utils.Round2(bmi)
		resp.BMI = &rounded
		resp.BMICategory = utils.BMICategory(bmi)
	}
	return resp
}

// Signup creates the account and its metabolic profile in one transaction.
// The daily calorie goal is computed up front from the profile inputs.
func (s *UserService) Signup(username, email, password string, profile ProfileInput) (*models.User, error) {
	if err := profile.validate(); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	goal := utils.CalculateDailyCalories(
		profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm,
		profile.ActivityLevel, profile.Goal,
	)

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Profile: models.UserProfile{
			Age:              profile.Age,
			Gender:           profile.Gender,
			WeightKg:         profile.WeightKg,
			HeightCm:         profile.HeightCm,
			ActivityLevel:    profile.ActivityLevel,
			Goal:             profile.Goal,
			DailyCalorieGoal: &goal,
			LastResetDate:    startOfDay(time.Now()),
		},
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and issues a JWT.
func (s *UserService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Username)
}

// GetProfile returns the profile with today's counter already reset if stale.
func (s *UserService) GetProfile(userID uint) (*ProfileResponse, error) {
	profile, err := s.budget.loadFresh(userID)
	if err != nil {
		return nil, err
	}
	return profileResponse(profile), nil
}

// UpdateProfile replaces the metabolic inputs and recomputes the daily
// calorie goal; the goal is never left stale after an input change.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*ProfileResponse, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %d", models.ErrNotFound, userID)
		}
		return nil, err
	}

	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.WeightKg = input.WeightKg
	profile.HeightCm = input.HeightCm
	profile.ActivityLevel = input.ActivityLevel
	profile.Goal = input.Goal

	goal := utils.CalculateDailyCalories(
		profile.Age, profile.Gender, profile.WeightKg, profile.HeightCm,
		profile.ActivityLevel, profile.Goal,
	)
	profile.DailyCalorieGoal = &goal

	// Only the metabolic columns are written. The budget columns belong to
	// the budget service; writing them back here would clobber an eat that
	// committed after the load above.
	err := s.db.Model(&profile).Updates(map[string]interface{}{
		"age":                input.Age,
		"gender":             input.Gender,
		"weight_kg":          input.WeightKg,
		"height_cm":          input.HeightCm,
		"activity_level":     input.ActivityLevel,
		"goal":               input.Goal,
		"daily_calorie_goal": goal,
	}).Error
	if err != nil {
		return nil, err
	}
	return profileResponse(&profile), nil
}
