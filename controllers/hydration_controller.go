package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

func AddGlass(hydration *services.HydrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := hydration.AddGlass(c.Request.Context(), middlewares.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"glasses": count})
	}
}

func SetGlasses(hydration *services.HydrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Glasses int `json:"glasses" binding:"min=0"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := hydration.SetGlasses(c.Request.Context(), middlewares.UserID(c), body.Glasses); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"glasses": body.Glasses})
	}
}

func GetGlasses(hydration *services.HydrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		today := time.Now().In(time.Local).Format("2006-01-02")
		count, err := hydration.Glasses(c.Request.Context(), middlewares.UserID(c), today)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"glasses": count})
	}
}
