package controllers

import (
	"net/http"

	"github.com/OJESH-DHK/SoupMandu/services"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// POST /food/recognize  { "image_base64": "data:image/jpeg;base64,..." }
func (ctl *FoodController) Recognize(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	userID := c.MustGet("userID").(uint)
	out, err := ctl.foods.Recognize(userID, req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type nutritionQuery struct {
	Food   string   `json:"food" binding:"required"`
	Pieces *float64 `json:"pieces"`
	Size   *string  `json:"size"`
}

// POST /food/nutrition  { "food": "momo", "pieces": 10 }
// Preview only: nothing is logged, the budget is untouched. Macro values are
// rounded to two decimals here and only here.
func (ctl *FoodController) Nutrition(c *gin.Context) {
	var req nutritionQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.foods.ComputeNutrition(req.Food, req.Pieces, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"food":     req.Food,
		"unit":     result.Unit,
		"calories": utils.Round2(result.Calories),
		"protein":  utils.Round2(result.Protein),
		"carbs":    utils.Round2(result.Carbs),
		"fat":      utils.Round2(result.Fat),
	}
	if result.Quantity != nil {
		resp["quantity"] = *result.Quantity
	}
	if result.Size != nil {
		resp["size"] = *result.Size
	}
	c.JSON(http.StatusOK, resp)
}
