package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

var DB *gorm.DB

// Engine holds the tunables of the sequencing and suggestion engines.
type Engine struct {
	// CheckInDelay is the minimum digestion delay before an energy
	// check-in opens. The 1-minute default is a development shortcut;
	// production deployments set CHECKIN_DELAY to something like 30m.
	CheckInDelay time.Duration
	// CheckInWindow is the trailing window in which a meal demands a
	// follow-up energy log.
	CheckInWindow time.Duration
	// PollInterval drives the engine re-evaluation ticker.
	PollInterval time.Duration
}

// LoadEngine reads the engine tunables from the environment.
func LoadEngine() Engine {
	return Engine{
		CheckInDelay:  envDuration("CHECKIN_DELAY", time.Minute),
		CheckInWindow: envDuration("CHECKIN_WINDOW", 3*time.Hour),
		PollInterval:  envDuration("ENGINE_POLL_INTERVAL", time.Minute),
	}
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("invalid duration in env, using default", "key", key, "value", v)
		return def
	}
	return d
}

// LoadEnv loads .env if present; missing files are fine in deployed envs.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "error", err)
	}
}

func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.MealLog{},
		&models.EnergyLog{},
		&models.DailyStats{},
	); err != nil {
		logger.Fatal("automigrate failed", "error", err)
	}

	DB = db
	return db
}

func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}
