package store_test

import (
	"context"
	"testing"

	"weekendly/internal/model"
	"weekendly/tests/testutil"
)

func sampleSnapshot() model.PlanSnapshot {
	return model.PlanSnapshot{
		ScheduleItems: []model.ScheduleItem{
			{
				ID: "item-1",
				Activity: model.Activity{
					ID:            "morning-yoga",
					Name:          "Morning Yoga",
					Category:      model.CategoryWellness,
					Icon:          "🧘",
					EstimatedTime: 60,
					Mood:          model.MoodRelaxed,
					Themes:        []model.Theme{model.ThemeLazy},
					IsIndoor:      true,
				},
				Day:       model.DaySaturday,
				TimeSlot:  model.SlotMorning,
				StartTime: "09:00",
				EndTime:   "10:00",
				Mood:      model.MoodRelaxed,
				Notes:     "bring a mat",
			},
		},
		Theme:       model.ThemeLazy,
		ActiveDays:  []model.Day{model.DaySaturday, model.DaySunday},
		LastUpdated: 1700000000000,
	}
}

func TestCurrentPlanRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := s.SaveCurrent(ctx, want); err != nil {
		t.Fatalf("SaveCurrent: %v", err)
	}

	got, err := s.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent: %v", err)
	}

	if got.Theme != want.Theme {
		t.Errorf("theme = %q, want %q", got.Theme, want.Theme)
	}
	if got.LastUpdated != want.LastUpdated {
		t.Errorf("lastUpdated = %d, want %d", got.LastUpdated, want.LastUpdated)
	}
	if len(got.ActiveDays) != 2 || got.ActiveDays[0] != model.DaySaturday {
		t.Errorf("activeDays = %v", got.ActiveDays)
	}
	if len(got.ScheduleItems) != 1 {
		t.Fatalf("items = %d, want 1", len(got.ScheduleItems))
	}

	item := got.ScheduleItems[0]
	if item.ID != "item-1" || item.StartTime != "09:00" || item.EndTime != "10:00" {
		t.Errorf("item did not round-trip: %+v", item)
	}
	if item.Activity.ID != "morning-yoga" || item.Activity.Icon != "🧘" {
		t.Errorf("embedded activity did not round-trip: %+v", item.Activity)
	}
	if item.Notes != "bring a mat" {
		t.Errorf("notes = %q", item.Notes)
	}
}

func TestSaveCurrentReplacesSnapshot(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.SaveCurrent(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("SaveCurrent: %v", err)
	}

	empty := model.PlanSnapshot{
		Theme:       model.ThemeFamily,
		LastUpdated: 1700000001000,
	}
	if err := s.SaveCurrent(ctx, empty); err != nil {
		t.Fatalf("SaveCurrent (replace): %v", err)
	}

	got, err := s.LoadCurrent(ctx)
	if err != nil {
		t.Fatalf("LoadCurrent: %v", err)
	}
	if got.Theme != model.ThemeFamily || len(got.ScheduleItems) != 0 {
		t.Errorf("snapshot not replaced: %+v", got)
	}
}

func TestLoadCurrentFreshDatabase(t *testing.T) {
	s := testutil.NewTestStore(t)

	got, err := s.LoadCurrent(context.Background())
	if err != nil {
		t.Fatalf("LoadCurrent on fresh db: %v", err)
	}
	if len(got.ScheduleItems) != 0 || got.ScheduleItems == nil {
		t.Errorf("fresh snapshot should have an empty, non-nil item list: %#v", got.ScheduleItems)
	}
}

func TestSavedPlanLibrary(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	first, err := s.SavePlan(ctx, "Chill Weekend", sampleSnapshot())
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if first.ID == "" {
		t.Fatal("SavePlan did not assign an id")
	}

	second, err := s.SavePlan(ctx, "Adventure Mode", sampleSnapshot())
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	plans, err := s.GetPlans(ctx)
	if err != nil {
		t.Fatalf("GetPlans: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("GetPlans returned %d plans, want 2", len(plans))
	}

	loaded, err := s.GetPlanByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetPlanByID: %v", err)
	}
	if loaded.Name != "Chill Weekend" {
		t.Errorf("name = %q", loaded.Name)
	}
	if len(loaded.Snapshot.ScheduleItems) != 1 {
		t.Errorf("snapshot items = %d, want 1", len(loaded.Snapshot.ScheduleItems))
	}

	if err := s.RenamePlan(ctx, first.ID, "Lazy Days"); err != nil {
		t.Fatalf("RenamePlan: %v", err)
	}
	renamed, err := s.GetPlanByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetPlanByID after rename: %v", err)
	}
	if renamed.Name != "Lazy Days" {
		t.Errorf("renamed name = %q", renamed.Name)
	}

	if err := s.DeletePlan(ctx, second.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	// Deleting an id that is already gone stays a no-op.
	if err := s.DeletePlan(ctx, second.ID); err != nil {
		t.Fatalf("DeletePlan (repeat): %v", err)
	}

	plans, err = s.GetPlans(ctx)
	if err != nil {
		t.Fatalf("GetPlans after delete: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != first.ID {
		t.Errorf("library after delete: %+v", plans)
	}
}
