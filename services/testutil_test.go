package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JohnSmith545/Fuel-and-Flow/config"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A fresh connection means a fresh in-memory database; pin the pool to
	// one connection so every query sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.MealLog{},
		&models.EnergyLog{},
		&models.DailyStats{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testEngine() config.Engine {
	return config.Engine{
		CheckInDelay:  time.Minute,
		CheckInWindow: 3 * time.Hour,
		PollInterval:  time.Minute,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, allergens []string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     "test@example.com",
		Password:  "hashed",
		Allergens: allergens,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// stubGlasses is a GlassCounter returning a canned count.
type stubGlasses struct {
	count int
	err   error
}

func (s stubGlasses) Glasses(_ context.Context, _ uint, _ string) (int, error) {
	return s.count, s.err
}
