package scheduling

import (
	"testing"
	"time"
)

func mustGrid(t *testing.T, clocks []string, weekdays []time.Weekday) *SlotGrid {
	t.Helper()
	grid, err := NewSlotGrid(mustBusinessTime(t), clocks, weekdays)
	if err != nil {
		t.Fatalf("NewSlotGrid: %v", err)
	}
	return grid
}

var monToSat = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

func TestIsServiceable(t *testing.T) {
	grid := mustGrid(t, []string{"08:00", "09:00"}, monToSat)

	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-15", true},  // Monday
		{"2024-01-20", true},  // Saturday
		{"2024-01-21", false}, // Sunday
		{"2024-07-14", false}, // Sunday in DST
	}
	for _, tc := range cases {
		got, err := grid.IsServiceable(tc.date)
		if err != nil {
			t.Fatalf("IsServiceable(%s): %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("IsServiceable(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsServiceableRejectsBadDate(t *testing.T) {
	grid := mustGrid(t, []string{"08:00"}, monToSat)
	if _, err := grid.IsServiceable("01/15/2024"); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestNewSlotGridValidation(t *testing.T) {
	bt := mustBusinessTime(t)

	if _, err := NewSlotGrid(bt, nil, monToSat); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, err := NewSlotGrid(bt, []string{"08:00", "8:30"}, monToSat); err == nil {
		t.Error("expected error for malformed grid time")
	}
	if _, err := NewSlotGrid(bt, []string{"09:00", "08:00"}, monToSat); err == nil {
		t.Error("expected error for out-of-order grid")
	}
	if _, err := NewSlotGrid(bt, []string{"08:00"}, nil); err == nil {
		t.Error("expected error for empty weekday set")
	}
}

func TestClocksReturnsCopy(t *testing.T) {
	grid := mustGrid(t, []string{"08:00", "09:00"}, monToSat)
	clocks := grid.Clocks()
	clocks[0] = "mutated"
	if got := grid.Clocks()[0]; got != "08:00" {
		t.Errorf("grid mutated through Clocks(): %s", got)
	}
}
