// Package errs defines the business rejections the engine can return.
// These are decisions the caller surfaces to the user, not failures.
package errs

import (
	"errors"
	"fmt"
)

const (
	CodeSafetyViolation = "SAFETY_VIOLATION"
	CodeUnloggedMeal    = "UNLOGGED_MEAL"
	CodeCannotDelete    = "CANNOT_DELETE"
	CodeInvalidLevel    = "INVALID_LEVEL"
)

// SafetyViolationError reports which allergen conflicted with the food.
type SafetyViolationError struct {
	Allergen string
}

func (e *SafetyViolationError) Error() string {
	return fmt.Sprintf("%s: %s", CodeSafetyViolation, e.Allergen)
}

// UnloggedMealError names the meal still waiting for an energy check-in.
type UnloggedMealError struct {
	MealName string
}

func (e *UnloggedMealError) Error() string {
	return fmt.Sprintf("%s: please log your energy level for your previous meal (%s) before logging a new meal", CodeUnloggedMeal, e.MealName)
}

// CannotDeleteError rejects deleting a meal locked by a later energy log.
type CannotDeleteError struct {
	Reason string
}

func (e *CannotDeleteError) Error() string {
	return fmt.Sprintf("%s: %s", CodeCannotDelete, e.Reason)
}

// ErrInvalidLevel rejects energy levels outside [1,10].
var ErrInvalidLevel = errors.New(CodeInvalidLevel + ": energy level must be between 1 and 10")

// Code extracts the rejection code for an error, or "" for non-rejections.
func Code(err error) string {
	var sv *SafetyViolationError
	var um *UnloggedMealError
	var cd *CannotDeleteError
	switch {
	case errors.As(err, &sv):
		return CodeSafetyViolation
	case errors.As(err, &um):
		return CodeUnloggedMeal
	case errors.As(err, &cd):
		return CodeCannotDelete
	case errors.Is(err, ErrInvalidLevel):
		return CodeInvalidLevel
	}
	return ""
}

// IsRejection reports whether err is an expected, user-facing rejection
// rather than a store or transport failure.
func IsRejection(err error) bool { return Code(err) != "" }
