package models

import (
	"gorm.io/gorm"
)

// MacroTargets holds the user's stated per-day macro targets from onboarding.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	DisplayName         string     `json:"display_name"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	Age                 *int       `json:"age,omitempty"`
	Weight              *float64   `json:"weight,omitempty"` // kg
	Height              *float64   `json:"height,omitempty"` // cm
	Allergens           StringList `gorm:"type:text" json:"allergens"`
	Goal                string     `gorm:"size:20" json:"goal"`              // weight_loss|maintenance|muscle_gain|focus
	Role                string     `gorm:"size:20;default:free" json:"role"` // free|premium
	TargetsJSON         string     `gorm:"column:targets;type:text" json:"-"`
}
