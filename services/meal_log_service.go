package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/config"
	"github.com/JohnSmith545/Fuel-and-Flow/errs"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
	"github.com/JohnSmith545/Fuel-and-Flow/utils"
)

// MealLogService owns meal-event writes and the two sequencing gates:
// a new meal may not be logged while a recent meal lacks its follow-up
// energy check-in, and a meal with a later energy log can't be deleted.
type MealLogService struct {
	db     *gorm.DB
	engine config.Engine
	now    func() time.Time
}

func NewMealLogService(db *gorm.DB, engine config.Engine) *MealLogService {
	return &MealLogService{db: db, engine: engine, now: time.Now}
}

// Log records a meal from a food's macro snapshot. The allergen gate runs
// first; override lets the caller log despite a conflict, and the override
// is stored verbatim on the row. The sequencing gate then scans every meal
// in the trailing window for a missing follow-up energy log.
//
// The scan reads then writes without a transaction, so two near-simultaneous
// logs can both pass the gate. That race is accepted: this is a single-user
// personal tracker and a duplicate prompt is harmless, while serializing the
// gate would block every log behind a round trip.
func (s *MealLogService) Log(ctx context.Context, userID uint, food *models.FoodItem, override bool) (*models.MealLog, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	safety := utils.CheckSafety(food.Ingredients, user.Allergens)
	if !safety.Safe && !override {
		return nil, &errs.SafetyViolationError{Allergen: safety.Conflict}
	}

	now := s.now()
	if unlogged, err := s.findUnloggedMeal(ctx, userID, now); err != nil {
		return nil, err
	} else if unlogged != nil {
		return nil, &errs.UnloggedMealError{MealName: unlogged.Name}
	}

	log := &models.MealLog{
		UserID:         userID,
		FoodID:         food.ID,
		Name:           food.Name,
		Calories:       food.Calories,
		Protein:        food.Protein,
		Carbs:          food.Carbs,
		Fat:            food.Fat,
		LoggedAt:       now,
		SafetyOverride: override,
		Image:          food.Image,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// Delete removes a meal log unless a later energy log has locked it.
func (s *MealLogService) Delete(ctx context.Context, userID, logID uint) error {
	var log models.MealLog
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		return err
	}

	var followUps int64
	if err := s.db.WithContext(ctx).
		Model(&models.EnergyLog{}).
		Where("user_id = ? AND logged_at > ?", userID, log.LoggedAt).
		Count(&followUps).Error; err != nil {
		return err
	}
	if followUps > 0 {
		return &errs.CannotDeleteError{
			Reason: "an energy level has already been logged for this meal; energy logs are locked to their meals",
		}
	}

	return s.db.WithContext(ctx).Delete(&log).Error
}

// findUnloggedMeal returns the oldest meal inside the trailing window that
// has no energy log strictly after it, or nil when every recent meal has
// its follow-up.
func (s *MealLogService) findUnloggedMeal(ctx context.Context, userID uint, now time.Time) (*models.MealLog, error) {
	windowStart := now.Add(-s.engine.CheckInWindow)

	var meals []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at > ?", userID, windowStart).
		Order("logged_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}

	var energies []models.EnergyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at > ?", userID, windowStart).
		Order("logged_at ASC").
		Find(&energies).Error; err != nil {
		return nil, err
	}

	return firstUnloggedMeal(meals, energies), nil
}

// firstUnloggedMeal scans every meal against every energy log. O(meals x
// energies) is fine at personal-tracker scale.
func firstUnloggedMeal(meals []models.MealLog, energies []models.EnergyLog) *models.MealLog {
	for i := range meals {
		followed := false
		for j := range energies {
			if energies[j].LoggedAt.After(meals[i].LoggedAt) {
				followed = true
				break
			}
		}
		if !followed {
			return &meals[i]
		}
	}
	return nil
}

func (s *MealLogService) List(ctx context.Context, userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *MealLogService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, from, to).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

// LastMeal returns the most recent meal log, or nil when none exists.
func (s *MealLogService) LastMeal(ctx context.Context, userID uint) (*models.MealLog, error) {
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
