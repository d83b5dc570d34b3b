package scheduling

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// BusinessTime converts between the business's wall-clock times and UTC
// instants. All date and weekday decisions are made in the configured IANA
// timezone, never in UTC, so a calendar day never shifts across the date
// line. Offsets (including DST) are resolved by constructing the instant
// directly in the loaded *time.Location.
type BusinessTime struct {
	loc          *time.Location
	slotDuration time.Duration
}

func NewBusinessTime(timezone string, slotDuration time.Duration) (*BusinessTime, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, NewConfigurationError("invalid business timezone "+timezone, err)
	}
	if slotDuration <= 0 {
		return nil, NewConfigurationError("slot duration must be positive", nil)
	}
	return &BusinessTime{loc: loc, slotDuration: slotDuration}, nil
}

func (bt *BusinessTime) Location() *time.Location {
	return bt.loc
}

func (bt *BusinessTime) SlotDuration() time.Duration {
	return bt.slotDuration
}

// ParseDate parses a strict YYYY-MM-DD string as a local calendar date.
func (bt *BusinessTime) ParseDate(date string) (time.Time, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, NewValidationError("invalid date %q, want YYYY-MM-DD", date)
	}
	day, err := time.ParseInLocation(dateLayout, date, bt.loc)
	if err != nil {
		return time.Time{}, NewValidationError("invalid calendar date %q", date)
	}
	return day, nil
}

// ParseClock parses a strict HH:mm wall-clock time into minutes past midnight.
func (bt *BusinessTime) ParseClock(clock string) (int, error) {
	if !clockRe.MatchString(clock) {
		return 0, NewValidationError("invalid time %q, want HH:mm", clock)
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, NewValidationError("invalid time of day %q", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// LocalToUTC resolves the wall-clock (date, clock) pair to a UTC instant
// using the timezone's actual offset at that instant.
func (bt *BusinessTime) LocalToUTC(date, clock string) (time.Time, error) {
	day, err := bt.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	mins, err := bt.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(day.Year(), day.Month(), day.Day(), mins/60, mins%60, 0, 0, bt.loc)
	return local.UTC(), nil
}

// SlotBounds returns the half-open UTC interval [start, start+slotDuration)
// occupied by a slot. Used both for overlap checks and for building calendar
// event payloads.
func (bt *BusinessTime) SlotBounds(date, clock string) (Interval, error) {
	start, err := bt.LocalToUTC(date, clock)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start.Add(bt.slotDuration)}, nil
}

// DayBounds returns the UTC interval covering the full local calendar day,
// local midnight to the next local midnight. On DST transition days this is
// 23 or 25 hours long rather than a fixed 24.
func (bt *BusinessTime) DayBounds(date string) (Interval, error) {
	day, err := bt.ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, bt.loc)
	end := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, bt.loc)
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// FormatLocal renders a UTC instant back into the business timezone.
func (bt *BusinessTime) FormatLocal(t time.Time) (date, clock string) {
	local := t.In(bt.loc)
	return local.Format(dateLayout), local.Format("15:04")
}
