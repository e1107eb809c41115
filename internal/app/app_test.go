package app

import (
	"testing"

	"weekendly/internal/catalog"
	"weekendly/internal/model"
)

func TestRefreshActivities(t *testing.T) {
	known := catalog.All()[0]
	stale := known
	stale.Name = "Old Name"
	stale.Icon = ""

	retired := model.Activity{ID: "retired-activity", Name: "Retired"}

	items := []model.ScheduleItem{
		{ID: "1", Activity: stale, Day: model.DaySaturday, TimeSlot: model.SlotMorning},
		{ID: "2", Activity: retired, Day: model.DaySunday, TimeSlot: model.SlotEvening},
	}

	got := refreshActivities(items)

	if got[0].Activity.Name != known.Name {
		t.Errorf("catalog-backed activity name = %q, want refreshed %q",
			got[0].Activity.Name, known.Name)
	}
	if got[0].Activity.Icon != known.Icon {
		t.Errorf("catalog-backed activity icon = %q, want refreshed %q",
			got[0].Activity.Icon, known.Icon)
	}
	if got[1].Activity.Name != "Retired" {
		t.Errorf("retired activity = %q, want stored copy kept", got[1].Activity.Name)
	}
}

func TestNextTheme(t *testing.T) {
	if got := nextTheme(model.ThemeLazy); got != model.ThemeAdventurous {
		t.Errorf("nextTheme(lazy) = %q, want adventurous", got)
	}
	if got := nextTheme(model.Themes[len(model.Themes)-1]); got != model.Themes[0] {
		t.Errorf("nextTheme should wrap to %q, got %q", model.Themes[0], got)
	}
	if got := nextTheme("unknown"); got != model.Themes[0] {
		t.Errorf("nextTheme(unknown) = %q, want first theme", got)
	}
}
