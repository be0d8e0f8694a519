package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (nc *NutritionController) CreateMeal(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	meal, err := nc.nutrition.CreateMeal(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, meal, "Meal logged successfully")
}

func (nc *NutritionController) ListMeals(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondError(c, err)
		return
	}

	meals, err := nc.nutrition.ListMeals(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, meals, "")
}

func (nc *NutritionController) UpdateMeal(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Meal not found"))
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}

	meal, err := nc.nutrition.UpdateMeal(c.Request.Context(), userID, mealID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, meal, "Meal updated")
}

func (nc *NutritionController) DeleteMeal(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	mealID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, utils.NewNotFoundError("Meal not found"))
		return
	}

	if err := nc.nutrition.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Meal deleted")
}

func (nc *NutritionController) DailySummary(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		respondError(c, utils.NewAuthError("Unauthorized"))
		return
	}

	date, err := parseDateQuery(c, "date")
	if err != nil {
		respondError(c, err)
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	summary, err := nc.nutrition.GetDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, summary, "")
}
