package controllers

import (
	"net/http"

	"github.com/OJESH-DHK/SoupMandu/models"
	"github.com/OJESH-DHK/SoupMandu/services"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals  *services.MealService
	budget *services.BudgetService
}

func NewMealController(meals *services.MealService, budget *services.BudgetService) *MealController {
	return &MealController{meals: meals, budget: budget}
}

func logEntryJSON(entry *models.MealLog) gin.H {
	out := gin.H{
		"id":         entry.ID,
		"food":       entry.FoodItem.Name,
		"confidence": entry.Confidence,
		"unit":       entry.Unit,
		"calories":   utils.Round2(entry.Calories),
		"protein":    utils.Round2(entry.Protein),
		"carbs":      utils.Round2(entry.Carbs),
		"fat":        utils.Round2(entry.Fat),
		"eaten_at":   entry.CreatedAt,
	}
	if entry.Quantity != nil {
		out["quantity"] = *entry.Quantity
	}
	if entry.Size != nil {
		out["size"] = *entry.Size
	}
	return out
}

// POST /food/eat
func (ctl *MealController) Eat(c *gin.Context) {
	var req services.EatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uint)
	entry, err := ctl.meals.Eat(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := ctl.budget.Summary(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"log":    logEntryJSON(entry),
		"budget": summary,
	})
}

// GET /food/logs?today=true | ?date=YYYY-MM-DD | ?start_date=...&end_date=...
func (ctl *MealController) ListLogs(c *gin.Context) {
	filter := services.LogFilter{
		Today:     c.Query("today") == "true",
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	userID := c.MustGet("userID").(uint)
	logs, err := ctl.meals.ListLogs(userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]gin.H, 0, len(logs))
	for i := range logs {
		out = append(out, logEntryJSON(&logs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "logs": out})
}

// GET /food/summary
func (ctl *MealController) DailySummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	summary, err := ctl.budget.Summary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
