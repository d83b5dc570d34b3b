package scheduling

import (
	"context"
	"time"
)

// Interval is a half-open [Start, End) range of UTC instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share any instant.
// Back-to-back intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return other.Start.Before(iv.End) && other.End.After(iv.Start)
}

// BusySource is the remote calendar boundary. Implementations return every
// busy interval overlapping [startUTC, endUTC) and surface failures as
// scheduling errors (remoteUnavailable, unauthorized, notFound).
type BusySource interface {
	BusyIntervals(ctx context.Context, startUTC, endUTC time.Time) ([]Interval, error)
}
