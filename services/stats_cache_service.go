package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

// StatsCacheService fronts the aggregator with a persisted per-day summary.
// A cached row is a frozen snapshot: it is returned verbatim on a hit and
// never re-validated against the live event store.
type StatsCacheService struct {
	db    *gorm.DB
	stats *StatsService
}

func NewStatsCacheService(db *gorm.DB, stats *StatsService) *StatsCacheService {
	return &StatsCacheService{db: db, stats: stats}
}

// Load returns the cached summary for (user, date), or computes one on a
// miss. The computed value is not persisted here; persisting is an explicit
// Save call.
func (c *StatsCacheService) Load(ctx context.Context, userID uint, date string) (*models.DailyStats, error) {
	var cached models.DailyStats
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&cached).Error
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return c.stats.Aggregate(ctx, userID, date), nil
}

// Save upserts the summary keyed by (user, date). Safe to call repeatedly
// for the same date; last write wins.
func (c *StatsCacheService) Save(ctx context.Context, stats *models.DailyStats) error {
	var row models.DailyStats
	err := c.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", stats.UserID, stats.Date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.db.WithContext(ctx).Create(stats).Error
	}
	if err != nil {
		return err
	}

	stats.ID = row.ID
	stats.CreatedAt = row.CreatedAt
	return c.db.WithContext(ctx).Save(stats).Error
}
