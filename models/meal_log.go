package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog records one logged meal. Macros are snapshotted from the food at
// log time, not live-linked; editing the food later never changes the log.
type MealLog struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`
	FoodID uint `json:"food_id"`

	Name     string  `gorm:"not null" json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	LoggedAt       time.Time `gorm:"index;not null" json:"logged_at"`
	SafetyOverride bool      `json:"safety_override"` // logged despite an allergen conflict
	Recommended    bool      `json:"is_recommended"`
	Image          string    `json:"image,omitempty"`
}
