package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

func GetProfile(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), middlewares.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"profile": user,
			"targets": svc.Targets(user),
		})
	}
}

func UpdateProfile(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body services.ProfileUpdate
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.Update(c.Request.Context(), middlewares.UserID(c), body)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
