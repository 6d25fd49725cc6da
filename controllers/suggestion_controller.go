package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

func GetSuggestions(suggestions *services.SuggestionService, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Get(c.Request.Context(), middlewares.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, suggestions.Suggestions(c.Request.Context(), user))
	}
}
