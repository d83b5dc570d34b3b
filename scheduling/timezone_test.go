package scheduling

import (
	"testing"
	"time"
)

func mustBusinessTime(t *testing.T) *BusinessTime {
	t.Helper()
	bt, err := NewBusinessTime("America/Los_Angeles", time.Hour)
	if err != nil {
		t.Fatalf("NewBusinessTime: %v", err)
	}
	return bt
}

func TestLocalToUTCRoundTrip(t *testing.T) {
	bt := mustBusinessTime(t)

	// Same wall clock, different UTC offsets: PST in January, PDT in July.
	cases := []struct {
		date  string
		clock string
	}{
		{"2024-01-15", "09:00"},
		{"2024-07-15", "09:00"},
		{"2024-03-10", "08:00"}, // spring-forward day, slot after the jump
		{"2024-11-03", "08:00"}, // fall-back day
	}
	for _, tc := range cases {
		instant, err := bt.LocalToUTC(tc.date, tc.clock)
		if err != nil {
			t.Fatalf("LocalToUTC(%s %s): %v", tc.date, tc.clock, err)
		}
		gotDate, gotClock := bt.FormatLocal(instant)
		if gotDate != tc.date || gotClock != tc.clock {
			t.Errorf("round trip %s %s: got %s %s", tc.date, tc.clock, gotDate, gotClock)
		}
	}
}

func TestLocalToUTCUsesSeasonalOffset(t *testing.T) {
	bt := mustBusinessTime(t)

	winter, err := bt.LocalToUTC("2024-01-15", "09:00")
	if err != nil {
		t.Fatalf("winter: %v", err)
	}
	summer, err := bt.LocalToUTC("2024-07-15", "09:00")
	if err != nil {
		t.Fatalf("summer: %v", err)
	}

	if winter.Hour() != 17 { // PST is UTC-8
		t.Errorf("winter 09:00 local = %02d:00 UTC, want 17:00", winter.Hour())
	}
	if summer.Hour() != 16 { // PDT is UTC-7
		t.Errorf("summer 09:00 local = %02d:00 UTC, want 16:00", summer.Hour())
	}
}

func TestSlotBounds(t *testing.T) {
	bt := mustBusinessTime(t)

	slot, err := bt.SlotBounds("2024-01-15", "09:00")
	if err != nil {
		t.Fatalf("SlotBounds: %v", err)
	}
	if got := slot.End.Sub(slot.Start); got != time.Hour {
		t.Errorf("slot length = %v, want 1h", got)
	}
	if !slot.Start.Before(slot.End) {
		t.Errorf("interval not half-open ordered: %v / %v", slot.Start, slot.End)
	}
}

func TestDayBoundsOnDSTTransition(t *testing.T) {
	bt := mustBusinessTime(t)

	cases := []struct {
		date string
		want time.Duration
	}{
		{"2024-01-15", 24 * time.Hour},
		{"2024-03-10", 23 * time.Hour}, // spring forward
		{"2024-11-03", 25 * time.Hour}, // fall back
	}
	for _, tc := range cases {
		day, err := bt.DayBounds(tc.date)
		if err != nil {
			t.Fatalf("DayBounds(%s): %v", tc.date, err)
		}
		if got := day.End.Sub(day.Start); got != tc.want {
			t.Errorf("DayBounds(%s) length = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	bt := mustBusinessTime(t)

	bad := []string{"", "2024-1-15", "15-01-2024", "2024/01/15", "2024-13-40", "not-a-date", "2024-01-15T00:00:00Z"}
	for _, in := range bad {
		if _, err := bt.ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		} else if !IsValidation(err) {
			t.Errorf("ParseDate(%q): expected validation error, got %v", in, err)
		}
	}

	if _, err := bt.ParseDate("2024-01-15"); err != nil {
		t.Errorf("ParseDate valid input: %v", err)
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	bt := mustBusinessTime(t)

	bad := []string{"", "9:00", "09:0", "25:00", "09:60", "09-00"}
	for _, in := range bad {
		if _, err := bt.ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q): expected error", in)
		}
	}

	mins, err := bt.ParseClock("14:30")
	if err != nil {
		t.Fatalf("ParseClock valid input: %v", err)
	}
	if mins != 14*60+30 {
		t.Errorf("ParseClock(14:30) = %d, want %d", mins, 14*60+30)
	}
}

func TestNewBusinessTimeRejectsBadConfig(t *testing.T) {
	if _, err := NewBusinessTime("Not/AZone", time.Hour); err == nil {
		t.Error("expected error for unknown timezone")
	}
	if _, err := NewBusinessTime("America/Los_Angeles", 0); err == nil {
		t.Error("expected error for zero slot duration")
	}
}
