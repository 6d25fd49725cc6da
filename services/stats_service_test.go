package services

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

func TestComputeDailyStatsEndToEnd(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	meals := []models.MealLog{
		{Name: "Chicken Bowl", Calories: 500, Protein: 30, Carbs: 50, Fat: 20, LoggedAt: day.Add(12 * time.Hour)},
	}
	energies := []models.EnergyLog{
		{Level: 8, LoggedAt: day.Add(13 * time.Hour)},
	}

	stats := computeDailyStats(1, "2026-08-30", meals, energies)

	if stats.TotalCalories != 500 || stats.TotalProtein != 30 || stats.TotalCarbs != 50 || stats.TotalFat != 20 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AverageEnergyScore != 8 {
		t.Fatalf("expected average 8, got %v", stats.AverageEnergyScore)
	}
	if stats.PeakEnergyLevel != 8 {
		t.Fatalf("expected peak 8, got %d", stats.PeakEnergyLevel)
	}
	// One reading is not enough to call the day stable.
	if stats.MetabolicStability != 0 {
		t.Fatalf("expected stability 0 with a single energy log, got %v", stats.MetabolicStability)
	}
	if stats.CalorieAdherence != 0 {
		t.Fatalf("calorie adherence is a declared placeholder, expected 0, got %v", stats.CalorieAdherence)
	}
}

func TestComputeDailyStatsEmptyDay(t *testing.T) {
	stats := computeDailyStats(1, "2026-08-30", nil, nil)

	if stats.TotalCalories != 0 || stats.AverageEnergyScore != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
	if stats.PeakEnergyTime != nil || stats.LowestEnergyTime != nil {
		t.Fatal("expected no peak/trough times without energy logs")
	}
	if stats.Meals == nil || stats.EnergyLogs == nil {
		t.Fatal("expected empty, non-nil snapshot lists")
	}
}

func TestComputeDailyStatsEnergyMetrics(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	energies := []models.EnergyLog{
		{Level: 4, LoggedAt: day.Add(8 * time.Hour)},
		{Level: 9, LoggedAt: day.Add(10 * time.Hour)},
		{Level: 9, LoggedAt: day.Add(12 * time.Hour)}, // later event at the same peak
		{Level: 4, LoggedAt: day.Add(14 * time.Hour)}, // later event at the same trough
	}

	stats := computeDailyStats(1, "2026-08-30", nil, energies)

	if stats.AverageEnergyScore != 6.5 {
		t.Fatalf("expected average 6.5, got %v", stats.AverageEnergyScore)
	}
	if !stats.PeakEnergyTime.Equal(day.Add(10 * time.Hour)) {
		t.Fatalf("peak time should be the first event at the max, got %v", stats.PeakEnergyTime)
	}
	if !stats.LowestEnergyTime.Equal(day.Add(8 * time.Hour)) {
		t.Fatalf("trough time should be the first event at the min, got %v", stats.LowestEnergyTime)
	}

	// Population variance of 4,9,9,4 is 6.25; stability 100 - 6.25*2.5.
	if math.Abs(stats.EnergyVariance-6.25) > 1e-9 {
		t.Fatalf("expected variance 6.25, got %v", stats.EnergyVariance)
	}
	if math.Abs(stats.MetabolicStability-84.375) > 1e-9 {
		t.Fatalf("expected stability 84.375, got %v", stats.MetabolicStability)
	}
}

func TestComputeDailyStatsAverageRounding(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	energies := []models.EnergyLog{
		{Level: 5, LoggedAt: day.Add(8 * time.Hour)},
		{Level: 6, LoggedAt: day.Add(9 * time.Hour)},
		{Level: 6, LoggedAt: day.Add(10 * time.Hour)},
	}

	stats := computeDailyStats(1, "2026-08-30", nil, energies)
	// 17/3 = 5.666… rounds to one decimal.
	if stats.AverageEnergyScore != 5.7 {
		t.Fatalf("expected average 5.7, got %v", stats.AverageEnergyScore)
	}
}

func TestStabilityScoreBounds(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	sequences := [][]int{
		{},
		{5},
		{5, 5},
		{1, 10},
		{1, 10, 1, 10, 1, 10},
		{3, 4, 5, 6, 7, 8},
	}
	for _, levels := range sequences {
		var energies []models.EnergyLog
		for i, lvl := range levels {
			energies = append(energies, models.EnergyLog{Level: lvl, LoggedAt: day.Add(time.Duration(i) * time.Hour)})
		}

		stats := computeDailyStats(1, "2026-08-30", nil, energies)
		if stats.MetabolicStability < 0 || stats.MetabolicStability > 100 {
			t.Fatalf("levels %v: stability %v out of [0,100]", levels, stats.MetabolicStability)
		}
		if len(levels) < 2 && stats.MetabolicStability != 0 {
			t.Fatalf("levels %v: expected stability forced to 0 below 2 samples", levels)
		}
	}

	// Two identical readings are genuinely stable, not "no data".
	stats := computeDailyStats(1, "2026-08-30", nil, []models.EnergyLog{
		{Level: 5, LoggedAt: day.Add(8 * time.Hour)},
		{Level: 5, LoggedAt: day.Add(9 * time.Hour)},
	})
	if stats.MetabolicStability != 100 {
		t.Fatalf("expected perfect stability 100, got %v", stats.MetabolicStability)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, nil)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	seed := []any{
		&models.MealLog{UserID: user.ID, Name: "Toast", Calories: 250, Protein: 8, Carbs: 40, Fat: 5, LoggedAt: day.Add(8 * time.Hour)},
		&models.MealLog{UserID: user.ID, Name: "Curry", Calories: 650, Protein: 35, Carbs: 70, Fat: 22, LoggedAt: day.Add(13 * time.Hour)},
		&models.EnergyLog{UserID: user.ID, Level: 6, LoggedAt: day.Add(9 * time.Hour)},
		&models.EnergyLog{UserID: user.ID, Level: 4, LoggedAt: day.Add(15 * time.Hour)},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc := NewStatsService(db, nil)
	first := svc.Aggregate(context.Background(), user.ID, "2026-08-30")
	second := svc.Aggregate(context.Background(), user.ID, "2026-08-30")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation is not idempotent:\n%+v\n%+v", first, second)
	}
	if first.TotalCalories != 900 {
		t.Fatalf("expected 900 calories, got %v", first.TotalCalories)
	}
	if len(first.Meals) != 2 || len(first.EnergyLogs) != 2 {
		t.Fatalf("expected denormalized snapshots, got %d meals / %d energy", len(first.Meals), len(first.EnergyLogs))
	}
}

func TestAggregateExcludesOtherDays(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, nil)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	rows := []any{
		&models.MealLog{UserID: user.ID, Name: "In range", Calories: 100, LoggedAt: day.Add(12 * time.Hour)},
		&models.MealLog{UserID: user.ID, Name: "Day before", Calories: 999, LoggedAt: day.Add(-time.Hour)},
		&models.MealLog{UserID: user.ID, Name: "Day after", Calories: 999, LoggedAt: day.Add(25 * time.Hour)},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	stats := NewStatsService(db, nil).Aggregate(context.Background(), user.ID, "2026-08-30")
	if stats.TotalCalories != 100 {
		t.Fatalf("expected only in-range meals counted, got %v", stats.TotalCalories)
	}
}

func TestAggregateHydrationOnlyForToday(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, nil)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	svc := NewStatsService(db, stubGlasses{count: 5})
	svc.now = fixedClock(now)

	today := svc.Aggregate(context.Background(), user.ID, "2026-08-31")
	if today.HydrationGlasses != 5 {
		t.Fatalf("expected today's hydration 5, got %d", today.HydrationGlasses)
	}

	yesterday := svc.Aggregate(context.Background(), user.ID, "2026-08-30")
	if yesterday.HydrationGlasses != 0 {
		t.Fatalf("hydration is not tracked historically, expected 0, got %d", yesterday.HydrationGlasses)
	}
}

func TestAggregateInvalidDateFailsSoft(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, nil)

	stats := NewStatsService(db, nil).Aggregate(context.Background(), user.ID, "not-a-date")
	if stats == nil {
		t.Fatal("expected a renderable empty summary, got nil")
	}
	if stats.TotalCalories != 0 || len(stats.Meals) != 0 {
		t.Fatalf("expected empty summary, got %+v", stats)
	}
}
