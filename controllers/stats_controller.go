package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

// GetDailyStats serves the cached summary for ?date=YYYY-MM-DD (today when
// omitted), aggregating on a miss.
func GetDailyStats(cache *services.StatsCacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date == "" {
			date = time.Now().In(time.Local).Format("2006-01-02")
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}

		stats, err := cache.Load(c.Request.Context(), middlewares.UserID(c), date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// SaveDailyStats persists a summary snapshot. Saving is explicit and
// idempotent: re-posting the same date overwrites the previous snapshot.
func SaveDailyStats(cache *services.StatsCacheService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.DailyStats
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}

		body.UserID = middlewares.UserID(c)
		if err := cache.Save(c.Request.Context(), &body); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
