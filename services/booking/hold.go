package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotHold fences a slot while a customer completes checkout. The hold is a
// redis SETNX with a short TTL, so an abandoned checkout frees the slot on
// its own.
type SlotHold struct {
	Client *redis.Client
	TTL    time.Duration
}

func holdKey(date, clock string) string {
	return fmt.Sprintf("hold:%s:%s", date, clock)
}

// Acquire takes the hold for bookingID. Returns false if another booking
// already holds the slot.
func (h *SlotHold) Acquire(ctx context.Context, date, clock, bookingID string) (bool, error) {
	ok, err := h.Client.SetNX(ctx, holdKey(date, clock), bookingID, h.TTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire slot hold: %w", err)
	}
	return ok, nil
}

// Release frees the hold, only if it is still owned by bookingID.
func (h *SlotHold) Release(ctx context.Context, date, clock, bookingID string) error {
	owner, err := h.Client.Get(ctx, holdKey(date, clock)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read slot hold: %w", err)
	}
	if owner != bookingID {
		return nil
	}
	if err := h.Client.Del(ctx, holdKey(date, clock)).Err(); err != nil {
		return fmt.Errorf("failed to release slot hold: %w", err)
	}
	return nil
}
