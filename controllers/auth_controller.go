package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

func Register(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email       string `json:"email" binding:"required,email"`
			Password    string `json:"password" binding:"required,min=8"`
			DisplayName string `json:"display_name"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := svc.Register(c.Request.Context(), body.Email, body.Password, body.DisplayName)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func Login(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := svc.Authenticate(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
