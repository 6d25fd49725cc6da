package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/models"
)

// EnginePoller re-evaluates check-in eligibility and suggestions for every
// connected user on a fixed interval and pushes the results over the hub.
// It is owned by its context: cancel the context and the ticker stops, no
// free-running timers left behind. A tick that loses the race with a
// disconnect just broadcasts to nobody.
type EnginePoller struct {
	db          *gorm.DB
	energy      *EnergyService
	suggestions *SuggestionService
	hub         *RealtimeHub
	interval    time.Duration
	kick        chan struct{}
}

func NewEnginePoller(db *gorm.DB, energy *EnergyService, suggestions *SuggestionService, hub *RealtimeHub, interval time.Duration) *EnginePoller {
	return &EnginePoller{
		db:          db,
		energy:      energy,
		suggestions: suggestions,
		hub:         hub,
		interval:    interval,
		kick:        make(chan struct{}, 1),
	}
}

// Run blocks until ctx is cancelled.
func (p *EnginePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("engine poller stopped")
			return
		case <-ticker.C:
			p.evaluateAll(ctx)
		case <-p.kick:
			p.evaluateAll(ctx)
		}
	}
}

// Kick forces an immediate re-evaluation, e.g. right after an energy
// submission. Non-blocking; a pending kick is enough.
func (p *EnginePoller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *EnginePoller) evaluateAll(ctx context.Context) {
	for _, userID := range p.hub.ActiveUsers() {
		p.evaluate(ctx, userID)
	}
}

func (p *EnginePoller) evaluate(ctx context.Context, userID uint) {
	status, err := p.energy.CanCheckIn(ctx, userID)
	if err != nil {
		// Attempt-once: the next tick will retry naturally.
		logger.Warn("eligibility check failed", "user", userID, "error", err)
		status = CheckInStatus{}
	}

	var user models.User
	suggestions := []Suggestion{}
	if err := p.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		logger.Warn("engine profile read failed", "user", userID, "error", err)
	} else {
		suggestions = p.suggestions.Suggestions(ctx, &user)
	}

	p.hub.Broadcast(userID, map[string]any{
		"kind":        "engine.tick",
		"check_in":    status,
		"suggestions": suggestions,
	})
}
