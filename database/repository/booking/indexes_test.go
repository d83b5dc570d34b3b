// File: database/repository/booking/indexes_test.go
package bookingRepo

import (
	"testing"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MongoDB rejects $ne inside a partial filter expression, so the active-slot
// uniqueness filter has to enumerate the live statuses with $in. Guard the
// shape here since a bad filter aborts startup.
func TestActiveSlotPartialFilterUsesSupportedOperators(t *testing.T) {
	var filter bson.M
	for _, model := range bookingIndexModels() {
		if model.Options != nil && model.Options.Name != nil && *model.Options.Name == "unique_active_slot" {
			f, ok := model.Options.PartialFilterExpression.(bson.M)
			if !ok {
				t.Fatalf("partial filter has unexpected type %T", model.Options.PartialFilterExpression)
			}
			filter = f
		}
	}
	if filter == nil {
		t.Fatal("unique_active_slot index not defined")
	}

	status, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status filter has unexpected type %T", filter["status"])
	}
	if _, bad := status["$ne"]; bad {
		t.Fatal("partial filter uses $ne, which createIndexes rejects")
	}
	in, ok := status["$in"].([]string)
	if !ok {
		t.Fatalf("status filter missing $in enumeration: %v", status)
	}
	want := map[string]bool{
		models.BookingStatusPending:   false,
		models.BookingStatusConfirmed: false,
	}
	for _, s := range in {
		if s == models.BookingStatusCancelled {
			t.Errorf("cancelled bookings must not block the slot: %v", in)
		}
		if _, known := want[s]; known {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("status %q missing from active-slot filter", s)
		}
	}
}
