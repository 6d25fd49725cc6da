package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

// LogMeal runs the allergen and sequencing gates before recording the meal.
// A 409 carries either the conflicting allergen or the unlogged meal name.
func LogMeal(meals *services.MealLogService, foods *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			FoodID         uint `json:"food_id" binding:"required"`
			OverrideSafety bool `json:"override_safety"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userID := middlewares.UserID(c)
		food, err := foods.Get(c.Request.Context(), userID, body.FoodID)
		if err != nil {
			respondError(c, err)
			return
		}

		log, err := meals.Log(c.Request.Context(), userID, food, body.OverrideSafety)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, log)
	}
}

func ListMealLogs(meals *services.MealLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := meals.List(c.Request.Context(), middlewares.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

// DeleteMealLog rejects with CANNOT_DELETE when a later energy log locks
// the meal.
func DeleteMealLog(meals *services.MealLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
			return
		}

		if err := meals.Delete(c.Request.Context(), middlewares.UserID(c), uint(id)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
