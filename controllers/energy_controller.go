package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

// LogEnergy records a check-in and kicks the engine so eligibility and
// suggestions refresh immediately instead of waiting for the next tick.
func LogEnergy(energy *services.EnergyService, poller *services.EnginePoller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Level int      `json:"level" binding:"required"`
			Tags  []string `json:"tags"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log, err := energy.Log(c.Request.Context(), middlewares.UserID(c), body.Level, body.Tags)
		if err != nil {
			respondError(c, err)
			return
		}

		if poller != nil {
			poller.Kick()
		}
		c.JSON(http.StatusCreated, log)
	}
}

func CanCheckIn(energy *services.EnergyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := energy.CanCheckIn(c.Request.Context(), middlewares.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}
