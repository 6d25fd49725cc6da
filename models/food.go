package models

import "gorm.io/gorm"

// FoodItem is a catalog entry. Custom items are user-authored and owned by
// the creating user; catalog items have UserID 0.
type FoodItem struct {
	gorm.Model
	Name        string     `gorm:"not null" json:"name"`
	Calories    float64    `json:"calories"`
	Protein     float64    `json:"protein"`
	Carbs       float64    `json:"carbs"`
	Fat         float64    `json:"fat"`
	Ingredients StringList `gorm:"type:text" json:"ingredients"`
	Recipe      string     `gorm:"type:text" json:"recipe,omitempty"`
	Custom      bool       `json:"is_custom"`
	Image       string     `json:"image,omitempty"`
	UserID      uint       `gorm:"index" json:"-"`
}
