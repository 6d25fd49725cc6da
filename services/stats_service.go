package services

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

const dateLayout = "2006-01-02"

// GlassCounter supplies the externally tracked hydration glass count.
// Hydration is only known for the current day; the aggregator never
// persists historical counts.
type GlassCounter interface {
	Glasses(ctx context.Context, userID uint, date string) (int, error)
}

// StatsService aggregates a calendar day's meal and energy events into a
// DailyStats summary. Aggregation is a pure function of the stored events;
// the same day aggregates to the same stats until something is written.
type StatsService struct {
	db        *gorm.DB
	hydration GlassCounter
	now       func() time.Time
}

func NewStatsService(db *gorm.DB, hydration GlassCounter) *StatsService {
	return &StatsService{db: db, hydration: hydration, now: time.Now}
}

// Aggregate computes the summary for a "YYYY-MM-DD" date. Read failures
// degrade to an all-zero summary so callers always get a renderable value.
func (s *StatsService) Aggregate(ctx context.Context, userID uint, date string) *models.DailyStats {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		logger.Warn("invalid stats date, returning empty summary", "date", date, "error", err)
		return emptyStats(userID, date)
	}
	start := day
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), day.Location())

	var meals []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, start, end).
		Order("logged_at ASC").
		Find(&meals).Error; err != nil {
		logger.Warn("meal read failed during aggregation", "user", userID, "date", date, "error", err)
		return emptyStats(userID, date)
	}

	var energies []models.EnergyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, start, end).
		Order("logged_at ASC").
		Find(&energies).Error; err != nil {
		logger.Warn("energy read failed during aggregation", "user", userID, "date", date, "error", err)
		return emptyStats(userID, date)
	}

	stats := computeDailyStats(userID, date, meals, energies)

	if date == s.now().In(time.Local).Format(dateLayout) && s.hydration != nil {
		glasses, err := s.hydration.Glasses(ctx, userID, date)
		if err != nil {
			logger.Warn("hydration read failed, counting 0", "user", userID, "error", err)
		} else {
			stats.HydrationGlasses = glasses
		}
	}

	return stats
}

// computeDailyStats does the arithmetic over already-fetched events.
func computeDailyStats(userID uint, date string, meals []models.MealLog, energies []models.EnergyLog) *models.DailyStats {
	stats := emptyStats(userID, date)

	for _, m := range meals {
		stats.TotalCalories += m.Calories
		stats.TotalProtein += m.Protein
		stats.TotalCarbs += m.Carbs
		stats.TotalFat += m.Fat
		stats.Meals = append(stats.Meals, models.MealSnapshot{
			Name:      m.Name,
			Calories:  m.Calories,
			Timestamp: m.LoggedAt,
		})
	}

	for _, e := range energies {
		stats.EnergyLogs = append(stats.EnergyLogs, models.EnergySnapshot{
			Level:     e.Level,
			Tags:      e.Tags,
			Timestamp: e.LoggedAt,
		})
	}

	if len(energies) > 0 {
		sum := 0
		for _, e := range energies {
			sum += e.Level
		}
		stats.AverageEnergyScore = math.Round(float64(sum)/float64(len(energies))*10) / 10

		// Peak and trough report the first event attaining the extremum,
		// so strict comparisons only.
		peak, trough := energies[0], energies[0]
		for _, e := range energies[1:] {
			if e.Level > peak.Level {
				peak = e
			}
			if e.Level < trough.Level {
				trough = e
			}
		}
		stats.PeakEnergyLevel = peak.Level
		peakAt := peak.LoggedAt
		stats.PeakEnergyTime = &peakAt
		stats.LowestEnergyLevel = trough.Level
		troughAt := trough.LoggedAt
		stats.LowestEnergyTime = &troughAt
	}

	stats.EnergyVariance = energyVariance(energies)
	// A single reading can't distinguish "stable" from "no data"; the score
	// stays 0 below two samples instead of reading as perfectly stable.
	if len(energies) >= 2 {
		stats.MetabolicStability = math.Max(0, 100-stats.EnergyVariance*2.5)
	}

	return stats
}

// energyVariance is the population variance (divide by N) of the day's
// levels; 0 below two samples.
func energyVariance(energies []models.EnergyLog) float64 {
	if len(energies) < 2 {
		return 0
	}
	mean := 0.0
	for _, e := range energies {
		mean += float64(e.Level)
	}
	mean /= float64(len(energies))

	sq := 0.0
	for _, e := range energies {
		d := float64(e.Level) - mean
		sq += d * d
	}
	return sq / float64(len(energies))
}

func emptyStats(userID uint, date string) *models.DailyStats {
	return &models.DailyStats{
		UserID:     userID,
		Date:       date,
		Meals:      models.MealSnapshots{},
		EnergyLogs: models.EnergySnapshots{},
	}
}
