package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"weekendly/internal/model"
)

func snapshotFixture() model.PlanSnapshot {
	hike := model.Activity{ID: "sunrise-hike", Name: "Sunrise Hike", Icon: "🌄", Category: model.CategoryOutdoor}
	movie := model.Activity{ID: "movie-night", Name: "Movie Night", Icon: "🎬", Category: model.CategoryEntertainment}

	return model.PlanSnapshot{
		ScheduleItems: []model.ScheduleItem{
			// Inserted evening-first: exporters must sort by start time.
			{ID: "b", Activity: movie, Day: model.DaySaturday, TimeSlot: model.SlotEvening,
				StartTime: "19:30", EndTime: "22:00", Notes: "Check showtimes"},
			{ID: "a", Activity: hike, Day: model.DaySaturday, TimeSlot: model.SlotMorning,
				StartTime: "08:00", EndTime: "11:00"},
		},
		Theme:      model.ThemeAdventurous,
		ActiveDays: []model.Day{model.DaySaturday, model.DaySunday},
	}
}

func TestRenderTextSortsByStartTime(t *testing.T) {
	out := RenderText(snapshotFixture())

	hikeIdx := strings.Index(out, "Sunrise Hike")
	movieIdx := strings.Index(out, "Movie Night")
	if hikeIdx < 0 || movieIdx < 0 {
		t.Fatalf("missing activities in output:\n%s", out)
	}
	if hikeIdx > movieIdx {
		t.Errorf("items not sorted by start time:\n%s", out)
	}

	if !strings.Contains(out, "08:00–11:00") {
		t.Errorf("missing time range:\n%s", out)
	}
	if !strings.Contains(out, "Check showtimes") {
		t.Errorf("missing notes:\n%s", out)
	}
}

func TestRenderTextMarksFreeDays(t *testing.T) {
	out := RenderText(snapshotFixture())

	sundayIdx := strings.Index(out, "Sunday")
	if sundayIdx < 0 {
		t.Fatalf("active day without items missing from output:\n%s", out)
	}
	if !strings.Contains(out[sundayIdx:], "(free)") {
		t.Errorf("empty day not marked free:\n%s", out)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := snapshotFixture()

	if err := WriteJSON(&buf, want); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got model.PlanSnapshot
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding exported JSON: %v", err)
	}

	if got.Theme != want.Theme || len(got.ScheduleItems) != len(want.ScheduleItems) {
		t.Errorf("envelope did not round-trip: %+v", got)
	}
	if got.ScheduleItems[0].StartTime != "19:30" {
		t.Errorf("insertion order not preserved in the envelope: %+v", got.ScheduleItems)
	}
}

func TestWriteJSONEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, model.PlanSnapshot{Theme: model.ThemeLazy}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"scheduleItems": []`) {
		t.Errorf("empty snapshot should export arrays, not null:\n%s", out)
	}
}

func TestWriteEmail(t *testing.T) {
	var buf bytes.Buffer
	err := WriteEmail(&buf, snapshotFixture(), EmailOptions{
		From: "me@example.com",
		To:   "friend@example.com",
	})
	if err != nil {
		t.Fatalf("WriteEmail: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "To: <friend@example.com>") {
		t.Errorf("missing To header:\n%s", out)
	}
	if !strings.Contains(out, "Subject: ") {
		t.Errorf("missing Subject header:\n%s", out)
	}
}
