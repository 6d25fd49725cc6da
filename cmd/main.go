package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JohnSmith545/Fuel-and-Flow/config"
	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/routes"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
	"github.com/JohnSmith545/Fuel-and-Flow/utils"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.InitDB()
	rdb := config.InitRedis()
	utils.InitS3(ctx)
	engine := config.LoadEngine()

	hub := services.NewRealtimeHub()
	hydration := services.NewHydrationService(rdb)
	energy := services.NewEnergyService(db, engine)
	suggestions := services.NewSuggestionService(db)
	stats := services.NewStatsService(db, hydration)
	poller := services.NewEnginePoller(db, energy, suggestions, hub, engine.PollInterval)

	deps := routes.Deps{
		Auth:        services.NewAuthService(db),
		Users:       services.NewUserService(db),
		Foods:       services.NewFoodService(db),
		Meals:       services.NewMealLogService(db, engine),
		Energy:      energy,
		StatsCache:  services.NewStatsCacheService(db, stats),
		Suggestions: suggestions,
		Hydration:   hydration,
		Hub:         hub,
		Poller:      poller,
	}

	// The poller dies with the signal context; no free-running timers.
	go poller.Run(ctx)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: routes.SetupRouter(deps)}

	go func() {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
