package schedule

import (
	"testing"

	"weekendly/internal/model"
)

var yogaActivity = model.Activity{
	ID:            "morning-yoga",
	Name:          "Morning Yoga",
	Category:      model.CategoryWellness,
	EstimatedTime: 60,
	Mood:          model.MoodRelaxed,
	Themes:        []model.Theme{model.ThemeLazy},
	IsIndoor:      true,
}

func TestAddDefaults(t *testing.T) {
	s := New()

	item := s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)

	if item.ID == "" {
		t.Error("Add should assign an id")
	}
	if item.StartTime != "09:00" {
		t.Errorf("morning default start = %q, want 09:00", item.StartTime)
	}
	if item.EndTime != "" {
		t.Errorf("end time should stay empty until edited, got %q", item.EndTime)
	}
	if item.Mood != model.MoodRelaxed {
		t.Errorf("mood = %q, want the activity's own mood", item.Mood)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestAddMoodFallback(t *testing.T) {
	s := New()
	moodless := yogaActivity
	moodless.Mood = ""

	item := s.Add(moodless, model.DaySunday, model.SlotEvening)
	if item.Mood != model.MoodHappy {
		t.Errorf("mood = %q, want happy fallback", item.Mood)
	}
}

func TestDefaultStartTime(t *testing.T) {
	tests := []struct {
		slot model.TimeSlot
		want string
	}{
		{model.SlotMorning, "09:00"},
		{model.SlotAfternoon, "14:00"},
		{model.SlotEvening, "19:00"},
		{model.TimeSlot("brunch"), "12:00"},
	}
	for _, tt := range tests {
		if got := DefaultStartTime(tt.slot); got != tt.want {
			t.Errorf("DefaultStartTime(%q) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := New()
	item := s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)

	start, end := "08:30", "09:45"
	notes := "bring a mat"
	s.Update(item.ID, ItemUpdate{StartTime: &start, EndTime: &end, Notes: &notes})

	got, ok := s.Get(item.ID)
	if !ok {
		t.Fatal("item disappeared after update")
	}
	if got.StartTime != "08:30" || got.EndTime != "09:45" || got.Notes != "bring a mat" {
		t.Errorf("update merged wrong: %+v", got)
	}

	// Untouched fields survive.
	if got.Day != model.DaySaturday || got.TimeSlot != model.SlotMorning {
		t.Errorf("update clobbered day/slot: %+v", got)
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)
	before := s.Items()

	notes := "ignored"
	s.Update("nope", ItemUpdate{Notes: &notes})

	after := s.Items()
	if len(after) != len(before) || after[0].Notes != "" {
		t.Errorf("update on unknown id changed the store: %+v", after)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := New()
	item := s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)

	s.Remove("unknown")
	if s.Len() != 1 {
		t.Fatalf("removing unknown id changed the store, Len() = %d", s.Len())
	}

	s.Remove(item.ID)
	s.Remove(item.ID)
	if s.Len() != 0 {
		t.Errorf("Len() = %d after removal, want 0", s.Len())
	}
}

func TestMoveKeepsTimes(t *testing.T) {
	s := New()
	item := s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)

	s.Move(item.ID, model.DaySunday, model.SlotEvening)

	got, _ := s.Get(item.ID)
	if got.Day != model.DaySunday || got.TimeSlot != model.SlotEvening {
		t.Errorf("move did not relocate: %+v", got)
	}
	if got.StartTime != "09:00" {
		t.Errorf("move must not touch startTime, got %q", got.StartTime)
	}

	// The stale time is reported as slot drift, not repaired.
	if ValidateItemTimeSlot(got) {
		t.Error("moved item should be flagged as out of its slot")
	}
}

func TestItemsForPreservesInsertionOrder(t *testing.T) {
	s := New()
	second := yogaActivity
	second.ID = "second"

	a := s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)
	b := s.Add(second, model.DaySaturday, model.SlotMorning)
	s.Add(yogaActivity, model.DaySunday, model.SlotMorning)

	got := s.ItemsFor(model.DaySaturday, model.SlotMorning)
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("ItemsFor returned wrong items/order: %v", ids(got))
	}
}

func TestReplace(t *testing.T) {
	s := New()
	s.Add(yogaActivity, model.DaySaturday, model.SlotMorning)

	fresh := []model.ScheduleItem{
		{ID: "x", Day: model.DaySunday, TimeSlot: model.SlotAfternoon, StartTime: "14:00"},
	}
	s.Replace(fresh)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d after replace, want 1", s.Len())
	}
	if _, ok := s.Get("x"); !ok {
		t.Error("replaced items not found")
	}

	// Mutating the input after Replace must not leak into the store.
	fresh[0].Notes = "mutated"
	got, _ := s.Get("x")
	if got.Notes != "" {
		t.Error("Replace did not copy the input slice")
	}
}

func TestConflicts(t *testing.T) {
	s := New()
	s.Replace([]model.ScheduleItem{
		{ID: "a", Day: model.DaySaturday, StartTime: "09:00", EndTime: "10:30"},
		{ID: "b", Day: model.DaySaturday, StartTime: "10:00", EndTime: "11:00"},
		{ID: "c", Day: model.DaySaturday, StartTime: "10:30", EndTime: "12:00"}, // touches a, no overlap
		{ID: "d", Day: model.DaySunday, StartTime: "09:00", EndTime: "10:30"},   // other day
	})

	itemA, _ := s.Get("a")
	got := s.Conflicts(itemA)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("Conflicts(a) = %v, want exactly item b", got)
	}

	itemC, _ := s.Get("c")
	for _, c := range s.Conflicts(itemC) {
		if c.ID == "c" {
			t.Error("Conflicts must exclude the item itself")
		}
		if c.ID == "a" {
			t.Error("adjoining ranges must not conflict")
		}
	}
}
