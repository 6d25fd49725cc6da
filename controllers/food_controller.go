package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

func CreateCustomFood(svc *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.CustomFoodRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		food, err := svc.CreateCustom(c.Request.Context(), middlewares.UserID(c), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, food)
	}
}

func ListFoods(svc *services.FoodService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middlewares.UserID(c)

		if q := c.Query("q"); q != "" {
			foods, err := svc.Search(c.Request.Context(), userID, q)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, foods)
			return
		}

		foods, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}
