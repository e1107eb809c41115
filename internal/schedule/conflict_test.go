package schedule

import (
	"testing"

	"weekendly/internal/model"
)

func TestTimeRangesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"overlapping", "09:00", "10:30", "10:00", "11:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"touching boundary", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"malformed start", "oops", "10:00", "09:30", "11:00", false},
		{"missing end", "09:00", "", "09:30", "11:00", false},
		{"inverted range", "11:00", "09:00", "09:30", "10:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeRangesOverlap(tt.startA, tt.endA, tt.startB, tt.endB)
			if got != tt.want {
				t.Errorf("TimeRangesOverlap(%q,%q,%q,%q) = %v, want %v",
					tt.startA, tt.endA, tt.startB, tt.endB, got, tt.want)
			}

			// Overlap is symmetric.
			sym := TimeRangesOverlap(tt.startB, tt.endB, tt.startA, tt.endA)
			if got != sym {
				t.Errorf("overlap not symmetric for %q-%q vs %q-%q",
					tt.startA, tt.endA, tt.startB, tt.endB)
			}
		})
	}
}

func testItem(id string, day model.Day, start, end string) model.ScheduleItem {
	return model.ScheduleItem{
		ID:        id,
		Day:       day,
		TimeSlot:  model.SlotMorning,
		StartTime: start,
		EndTime:   end,
	}
}

func TestConflictingItems(t *testing.T) {
	a := testItem("a", model.DaySaturday, "09:00", "10:00")
	b := testItem("b", model.DaySaturday, "09:30", "10:30")
	c := testItem("c", model.DaySaturday, "11:00", "12:00")
	all := []model.ScheduleItem{a, b, c}

	got := ConflictingItems(a, all)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("ConflictingItems(a) = %v, want exactly item b", ids(got))
	}

	if conflicts := ConflictingItems(c, all); len(conflicts) != 0 {
		t.Errorf("ConflictingItems(c) = %v, want none", ids(conflicts))
	}

	if !HasTimeConflicts(b, all) {
		t.Error("HasTimeConflicts(b) = false, want true")
	}
}

func TestConflictingItemsDifferentDays(t *testing.T) {
	a := testItem("a", model.DaySaturday, "09:00", "10:00")
	b := testItem("b", model.DaySunday, "09:00", "10:00")

	if HasTimeConflicts(a, []model.ScheduleItem{a, b}) {
		t.Error("items on different days must not conflict")
	}
}

func TestConflictingItemsExcludesSelf(t *testing.T) {
	a := testItem("a", model.DaySaturday, "09:00", "10:00")

	if got := ConflictingItems(a, []model.ScheduleItem{a}); len(got) != 0 {
		t.Errorf("item conflicts with itself: %v", ids(got))
	}
}

func TestValidateItemTimeSlot(t *testing.T) {
	item := testItem("a", model.DaySaturday, "09:00", "")
	item.TimeSlot = model.SlotMorning
	if !ValidateItemTimeSlot(item) {
		t.Error("09:00 should agree with morning")
	}

	// A drag move leaves the old start time behind; the mismatch is
	// reported, not fixed.
	item.TimeSlot = model.SlotEvening
	if ValidateItemTimeSlot(item) {
		t.Error("09:00 should disagree with evening")
	}

	item.StartTime = "garbage"
	if ValidateItemTimeSlot(item) {
		t.Error("malformed start time cannot be in any slot")
	}
}

func ids(items []model.ScheduleItem) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
