package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/config"
	"github.com/JohnSmith545/Fuel-and-Flow/errs"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

// EnergyService records energy check-ins and decides check-in eligibility.
type EnergyService struct {
	db     *gorm.DB
	engine config.Engine
	now    func() time.Time
}

func NewEnergyService(db *gorm.DB, engine config.Engine) *EnergyService {
	return &EnergyService{db: db, engine: engine, now: time.Now}
}

// Log stores a check-in. Levels run 1–10; tags are free text.
func (s *EnergyService) Log(ctx context.Context, userID uint, level int, tags []string) (*models.EnergyLog, error) {
	if level < 1 || level > 10 {
		return nil, errs.ErrInvalidLevel
	}
	log := &models.EnergyLog{
		UserID:   userID,
		Level:    level,
		Tags:     tags,
		LoggedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// CheckInStatus reports whether an energy check-in is currently open and,
// when it is, which meal it would follow.
type CheckInStatus struct {
	Eligible   bool       `json:"eligible"`
	LastMealAt *time.Time `json:"last_meal_at,omitempty"`
	LastMeal   string     `json:"last_meal,omitempty"`
}

// CanCheckIn opens a check-in only when the most recent meal has digested
// past the minimum delay, is still inside the trailing window, and has no
// follow-up energy log yet.
func (s *EnergyService) CanCheckIn(ctx context.Context, userID uint) (CheckInStatus, error) {
	var meal models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckInStatus{}, nil
	}
	if err != nil {
		return CheckInStatus{}, err
	}

	if !withinCheckInWindow(s.now().Sub(meal.LoggedAt), s.engine) {
		return CheckInStatus{}, nil
	}

	var followUps int64
	if err := s.db.WithContext(ctx).
		Model(&models.EnergyLog{}).
		Where("user_id = ? AND logged_at > ?", userID, meal.LoggedAt).
		Count(&followUps).Error; err != nil {
		return CheckInStatus{}, err
	}
	if followUps > 0 {
		// Already checked in for this meal.
		return CheckInStatus{}, nil
	}

	at := meal.LoggedAt
	return CheckInStatus{Eligible: true, LastMealAt: &at, LastMeal: meal.Name}, nil
}

// withinCheckInWindow is the D < elapsed < W rule, both bounds exclusive.
func withinCheckInWindow(elapsed time.Duration, engine config.Engine) bool {
	return elapsed > engine.CheckInDelay && elapsed < engine.CheckInWindow
}

// LastEnergy returns the most recent check-in, or nil when none exists.
func (s *EnergyService) LastEnergy(ctx context.Context, userID uint) (*models.EnergyLog, error) {
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

func (s *EnergyService) ListByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.EnergyLog, error) {
	var logs []models.EnergyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, from, to).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}
