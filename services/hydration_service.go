package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HydrationService counts the day's water glasses in Redis. The count lives
// outside the event store; the aggregator reads it for "today" only and it
// is never backfilled for past dates.
type HydrationService struct {
	rdb *redis.Client
	now func() time.Time
}

func NewHydrationService(rdb *redis.Client) *HydrationService {
	return &HydrationService{rdb: rdb, now: time.Now}
}

func hydrationKey(userID uint, date string) string {
	return fmt.Sprintf("hydration:%d:%s", userID, date)
}

// AddGlass increments today's count and returns the new total.
func (h *HydrationService) AddGlass(ctx context.Context, userID uint) (int, error) {
	key := hydrationKey(userID, h.today())
	n, err := h.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Counts are only meaningful for the current day; let them lapse.
	h.rdb.Expire(ctx, key, 48*time.Hour)
	return int(n), nil
}

// SetGlasses overwrites today's count.
func (h *HydrationService) SetGlasses(ctx context.Context, userID uint, count int) error {
	return h.rdb.Set(ctx, hydrationKey(userID, h.today()), count, 48*time.Hour).Err()
}

// Glasses implements GlassCounter. A missing key reads as 0.
func (h *HydrationService) Glasses(ctx context.Context, userID uint, date string) (int, error) {
	n, err := h.rdb.Get(ctx, hydrationKey(userID, date)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (h *HydrationService) today() string {
	return h.now().In(time.Local).Format(dateLayout)
}
