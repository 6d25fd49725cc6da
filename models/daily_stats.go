package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// MealSnapshot is a point-in-time copy of a meal log embedded in a cached
// daily summary. Deleting the underlying log later must not change it.
type MealSnapshot struct {
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

// EnergySnapshot is the energy-log counterpart of MealSnapshot.
type EnergySnapshot struct {
	Level     int       `json:"level"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

type MealSnapshots []MealSnapshot
type EnergySnapshots []EnergySnapshot

func (s MealSnapshots) Value() (driver.Value, error)   { return jsonValue(s) }
func (s *MealSnapshots) Scan(src any) error            { return jsonScan(src, s) }
func (s EnergySnapshots) Value() (driver.Value, error) { return jsonValue(s) }
func (s *EnergySnapshots) Scan(src any) error          { return jsonScan(src, s) }

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

func jsonScan(src, dst any) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), dst)
	case []byte:
		return json.Unmarshal(v, dst)
	}
	return errors.New("unsupported type for snapshot column")
}

// DailyStats is the cached per-day summary, keyed unique by (user, date).
// Date uses the "YYYY-MM-DD" form throughout.
type DailyStats struct {
	gorm.Model `json:"-"`
	UserID     uint   `gorm:"uniqueIndex:idx_stats_user_date;not null" json:"-"`
	Date       string `gorm:"uniqueIndex:idx_stats_user_date;size:10;not null" json:"date"`

	HydrationGlasses int     `json:"hydration_glasses"`
	TotalCalories    float64 `json:"total_calories"`
	TotalProtein     float64 `json:"total_protein"`
	TotalCarbs       float64 `json:"total_carbs"`
	TotalFat         float64 `json:"total_fat"`

	Meals      MealSnapshots   `gorm:"type:text" json:"meals_logged"`
	EnergyLogs EnergySnapshots `gorm:"type:text" json:"energy_logs"`

	AverageEnergyScore float64    `json:"average_energy_score"`
	PeakEnergyLevel    int        `json:"peak_energy_level"`
	PeakEnergyTime     *time.Time `json:"peak_energy_time"`
	LowestEnergyLevel  int        `json:"lowest_energy_level"`
	LowestEnergyTime   *time.Time `json:"lowest_energy_time"`
	MetabolicStability float64    `json:"metabolic_stability"` // 0–100, higher = steadier
	EnergyVariance     float64    `json:"energy_variance"`

	// Declared but not derived from any goal yet; always 0.
	CalorieAdherence float64 `json:"calorie_adherence"`
}
