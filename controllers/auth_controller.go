package controllers

import (
	"net/http"

	"github.com/OJESH-DHK/SoupMandu/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

type SignupInput struct {
	Username string                `json:"username" binding:"required"`
	Email    string                `json:"email" binding:"required,email"`
	Password string                `json:"password" binding:"required,min=8"`
	Profile  services.ProfileInput `json:"profile" binding:"required"`
}

// POST /auth/signup
func (ctl *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.Signup(input.Username, input.Email, input.Password, input.Profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                 user.ID,
		"username":           user.Username,
		"email":              user.Email,
		"daily_calorie_goal": user.Profile.DailyCalorieGoal,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.users.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
