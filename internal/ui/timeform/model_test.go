package timeform

import (
	"strings"
	"testing"

	"weekendly/internal/model"
)

func TestViewNamesActualSlotOnDrift(t *testing.T) {
	m := New(80, 24)
	m.Start(model.ScheduleItem{
		ID:        "x",
		Activity:  model.Activity{Name: "Morning Yoga", EstimatedTime: 60},
		Day:       model.DaySaturday,
		TimeSlot:  model.SlotMorning,
		StartTime: "19:00",
		EndTime:   "20:00",
	})

	view := m.View()
	if !strings.Contains(view, "falls outside the morning slot") {
		t.Errorf("view should warn about the off-slot start, got:\n%s", view)
	}
	if !strings.Contains(view, "that's evening") {
		t.Errorf("warning should name the slot 19:00 falls in, got:\n%s", view)
	}
}

func TestViewNoWarningInsideSlot(t *testing.T) {
	m := New(80, 24)
	m.Start(model.ScheduleItem{
		ID:        "x",
		Activity:  model.Activity{Name: "Morning Yoga", EstimatedTime: 60},
		Day:       model.DaySaturday,
		TimeSlot:  model.SlotMorning,
		StartTime: "09:00",
		EndTime:   "10:00",
	})

	if strings.Contains(m.View(), "falls outside") {
		t.Error("no drift warning expected for an in-slot start")
	}
}

func TestValidateEnd(t *testing.T) {
	m := New(80, 24)
	m.fb.start = "09:00"

	if err := m.validateEnd("08:00"); err == nil {
		t.Error("end before start should be rejected")
	}
	if err := m.validateEnd("09:10"); err == nil {
		t.Error("ranges under the minimum duration should be rejected")
	}
	if err := m.validateEnd("09:15"); err != nil {
		t.Errorf("a %d-minute range should pass, got %v", MinDuration, err)
	}
	if err := m.validateEnd("oops"); err == nil {
		t.Error("malformed end times should be rejected")
	}
}
