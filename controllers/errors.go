package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/errs"
)

// respondError maps business rejections to structured 409/422 responses the
// UI can act on (which allergen, which meal) and everything else to generic
// failures.
func respondError(c *gin.Context, err error) {
	var sv *errs.SafetyViolationError
	if errors.As(err, &sv) {
		c.JSON(http.StatusConflict, gin.H{
			"error":    errs.CodeSafetyViolation,
			"conflict": sv.Allergen,
			"message":  sv.Error(),
		})
		return
	}

	var um *errs.UnloggedMealError
	if errors.As(err, &um) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   errs.CodeUnloggedMeal,
			"meal":    um.MealName,
			"message": um.Error(),
		})
		return
	}

	var cd *errs.CannotDeleteError
	if errors.As(err, &cd) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   errs.CodeCannotDelete,
			"reason":  cd.Reason,
			"message": cd.Error(),
		})
		return
	}

	if errors.Is(err, errs.ErrInvalidLevel) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   errs.CodeInvalidLevel,
			"message": err.Error(),
		})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
