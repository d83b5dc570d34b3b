package scheduling

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	slots     []string
	fetchedAt time.Time
}

// Resolver computes the bookable start times for a date by subtracting the
// remote calendar's busy intervals from the slot grid. It owns the only two
// pieces of shared mutable state: a TTL cache of resolved dates and the
// single-flight group that coalesces concurrent lookups for the same date.
type Resolver struct {
	bt     *BusinessTime
	grid   *SlotGrid
	busy   BusySource
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.RWMutex
	cache map[string]cacheEntry
	// gen increments on every Invalidate so an in-flight resolution that
	// straddles the invalidation cannot write its stale result back.
	gen map[string]uint64

	flight singleflight.Group

	// now is swappable so TTL expiry is testable.
	now func() time.Time
}

func NewResolver(bt *BusinessTime, grid *SlotGrid, busy BusySource, ttl time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		bt:     bt,
		grid:   grid,
		busy:   busy,
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]cacheEntry),
		gen:    make(map[string]uint64),
		now:    time.Now,
	}
}

// GetAvailableSlots returns the grid-ordered "HH:mm" start times still open
// on the given date. A date outside the working weekdays yields an empty
// list without touching the cache or the remote calendar. Concurrent calls
// for an uncached date share one upstream query; failures propagate to every
// waiting caller and leave no cache entry behind.
func (r *Resolver) GetAvailableSlots(ctx context.Context, date string) ([]string, error) {
	serviceable, err := r.grid.IsServiceable(date)
	if err != nil {
		return nil, err
	}
	if !serviceable {
		return []string{}, nil
	}

	r.mu.RLock()
	entry, ok := r.cache[date]
	startGen := r.gen[date]
	r.mu.RUnlock()
	if ok && r.now().Sub(entry.fetchedAt) < r.ttl {
		return copySlots(entry.slots), nil
	}

	v, err, shared := r.flight.Do(date, func() (interface{}, error) {
		slots, err := r.resolve(ctx, date)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.gen[date] == startGen {
			r.cache[date] = cacheEntry{slots: slots, fetchedAt: r.now()}
		}
		r.mu.Unlock()
		return slots, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.logger.Debug("availability lookup coalesced", zap.String("date", date))
	}
	return copySlots(v.([]string)), nil
}

func copySlots(slots []string) []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// IsServiceableDate exposes the slot-grid predicate for callers that only
// need the weekday rule.
func (r *Resolver) IsServiceableDate(date string) (bool, error) {
	return r.grid.IsServiceable(date)
}

// SlotBounds exposes the UTC interval of a slot for callers that write
// calendar events.
func (r *Resolver) SlotBounds(date, clock string) (Interval, error) {
	return r.bt.SlotBounds(date, clock)
}

// Invalidate drops any cached availability for the date. Called after a
// booking, cancellation, or reschedule touches that day so the next read
// reflects the mutation instead of a stale list.
func (r *Resolver) Invalidate(date string) error {
	if _, err := r.bt.ParseDate(date); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.cache, date)
	r.gen[date]++
	r.mu.Unlock()
	r.flight.Forget(date)
	return nil
}

func (r *Resolver) resolve(ctx context.Context, date string) ([]string, error) {
	day, err := r.bt.DayBounds(date)
	if err != nil {
		return nil, err
	}

	busy, err := r.busy.BusyIntervals(ctx, day.Start, day.End)
	if err != nil {
		r.logger.Warn("busy interval query failed",
			zap.String("date", date), zap.Error(err))
		return nil, err
	}

	clocks := r.grid.Clocks()
	open := make([]string, 0, len(clocks))
	for _, clock := range clocks {
		slot, err := r.bt.SlotBounds(date, clock)
		if err != nil {
			return nil, err
		}
		blocked := false
		for _, b := range busy {
			if slot.Overlaps(b) {
				blocked = true
				break
			}
		}
		if !blocked {
			open = append(open, clock)
		}
	}

	r.logger.Debug("availability resolved",
		zap.String("date", date),
		zap.Int("busy", len(busy)),
		zap.Int("open", len(open)))
	return open, nil
}
