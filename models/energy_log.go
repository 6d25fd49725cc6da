package models

import (
	"time"

	"gorm.io/gorm"
)

// EnergyLog is a subjective energy check-in. Levels run 1–10. Created only;
// never updated or deleted.
type EnergyLog struct {
	gorm.Model
	UserID   uint       `gorm:"index;not null" json:"-"`
	Level    int        `gorm:"not null" json:"level"`
	Tags     StringList `gorm:"type:text" json:"tags"`
	LoggedAt time.Time  `gorm:"index;not null" json:"logged_at"`
}
