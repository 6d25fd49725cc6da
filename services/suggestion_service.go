package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

// Suggestion is one dietary-engine finding.
type Suggestion struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // warning|tip|success
	Message string `json:"message"`
}

// SuggestionService derives tips from the most recent meal/energy events
// and the running day's totals. Rules are additive, evaluated in a fixed
// order, and a read failure yields an empty list for the cycle.
type SuggestionService struct {
	db     *gorm.DB
	now    func() time.Time
	chance func() float64
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{db: db, now: time.Now, chance: rand.Float64}
}

// Suggestions runs the engine for one user.
func (s *SuggestionService) Suggestions(ctx context.Context, user *models.User) []Suggestion {
	lastMeal, err := s.lastMeal(ctx, user.ID)
	if err != nil {
		logger.Warn("suggestion engine meal read failed", "user", user.ID, "error", err)
		return []Suggestion{}
	}
	lastEnergy, err := s.lastEnergy(ctx, user.ID)
	if err != nil {
		logger.Warn("suggestion engine energy read failed", "user", user.ID, "error", err)
		return []Suggestion{}
	}

	now := s.now().In(time.Local)

	var todayProtein float64
	if now.Hour() >= 18 {
		todayProtein, err = s.proteinSince(ctx, user.ID, startOfDay(now))
		if err != nil {
			logger.Warn("suggestion engine protein read failed", "user", user.ID, "error", err)
			return []Suggestion{}
		}
	}

	return buildSuggestions(lastMeal, lastEnergy, todayProtein, user, now, s.chance)
}

// buildSuggestions is the pure rule core.
func buildSuggestions(lastMeal *models.MealLog, lastEnergy *models.EnergyLog, todayProtein float64, user *models.User, now time.Time, chance func() float64) []Suggestion {
	out := []Suggestion{}

	// Crash analysis: a low reading right after a carb-heavy meal.
	if lastEnergy != nil && lastMeal != nil && lastEnergy.Level <= 4 && lastMeal.Carbs > 30 {
		out = append(out, Suggestion{
			ID:   "sugar-crash",
			Type: "warning",
			Message: fmt.Sprintf(
				"Low energy detected. Your last meal (%s) had %.0fg of carbs. This might be a sugar crash. Try more fiber/protein next time.",
				lastMeal.Name, lastMeal.Carbs),
		})
	}

	if now.Hour() >= 18 {
		// Evening protein gap against 1.6 g/kg, 100 g flat when weight
		// is unknown.
		target := 100.0
		if user.Weight != nil && *user.Weight > 0 {
			target = *user.Weight * 1.6
		}
		if todayProtein < target*0.8 {
			needed := math.Round(target - todayProtein)
			out = append(out, Suggestion{
				ID:   "protein-gap",
				Type: "tip",
				Message: fmt.Sprintf(
					"It's evening and you're about %.0fg short on protein (%.0fg/%.0fg). Try a high-protein dinner to aid recovery.",
					needed, todayProtein, math.Round(target)),
			})
		}
	} else if len(out) == 0 && chance() > 0.7 {
		// Daytime filler fires on a random draw; the chance source is
		// injected so the rule stays testable.
		out = append(out, Suggestion{
			ID:      "rec-hydration",
			Type:    "tip",
			Message: "Stay hydrated! Drink a glass of water before your next meal.",
		})
	}

	// High energy always earns the success note, whatever else fired.
	if lastEnergy != nil && lastEnergy.Level >= 8 {
		out = append(out, Suggestion{
			ID:      "doing-great",
			Type:    "success",
			Message: "You're in the zone! Keep this momentum going.",
		})
	}

	return out
}

func (s *SuggestionService) lastMeal(ctx context.Context, userID uint) (*models.MealLog, error) {
	var log models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SuggestionService) lastEnergy(ctx context.Context, userID uint) (*models.EnergyLog, error) {
	var log models.EnergyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *SuggestionService) proteinSince(ctx context.Context, userID uint, since time.Time) (float64, error) {
	var total *float64
	err := s.db.WithContext(ctx).
		Model(&models.MealLog{}).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Select("SUM(protein)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
