package scheduling

import "time"

// SlotGrid is the fixed business calendar: the ordered daily start times and
// the weekdays on which service is offered. Pure configuration, no I/O.
type SlotGrid struct {
	clocks   []string
	weekdays map[time.Weekday]bool
	bt       *BusinessTime
}

func NewSlotGrid(bt *BusinessTime, clocks []string, weekdays []time.Weekday) (*SlotGrid, error) {
	if len(clocks) == 0 {
		return nil, NewConfigurationError("slot grid must not be empty", nil)
	}
	prev := -1
	for _, c := range clocks {
		mins, err := bt.ParseClock(c)
		if err != nil {
			return nil, NewConfigurationError("invalid slot grid time "+c, err)
		}
		if mins <= prev {
			return nil, NewConfigurationError("slot grid times must be strictly increasing", nil)
		}
		prev = mins
	}
	if len(weekdays) == 0 {
		return nil, NewConfigurationError("working days must not be empty", nil)
	}
	allowed := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		allowed[wd] = true
	}
	return &SlotGrid{clocks: clocks, weekdays: allowed, bt: bt}, nil
}

// Clocks returns the ordered daily start times ("HH:mm").
func (g *SlotGrid) Clocks() []string {
	out := make([]string, len(g.clocks))
	copy(out, g.clocks)
	return out
}

// IsServiceable reports whether bookings are offered on the given local
// date. The weekday is taken from the local calendar, not from a UTC shift.
func (g *SlotGrid) IsServiceable(date string) (bool, error) {
	day, err := g.bt.ParseDate(date)
	if err != nil {
		return false, err
	}
	return g.weekdays[day.Weekday()], nil
}
