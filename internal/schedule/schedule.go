// Package schedule owns the mutable collection of placed activities for
// the current plan and the pairwise conflict detection over it.
package schedule

import (
	"github.com/google/uuid"

	"weekendly/internal/model"
)

// DefaultStartTime returns the fixed per-slot start assigned when an
// activity is first placed without an explicit time.
func DefaultStartTime(slot model.TimeSlot) string {
	switch slot {
	case model.SlotMorning:
		return "09:00"
	case model.SlotAfternoon:
		return "14:00"
	case model.SlotEvening:
		return "19:00"
	default:
		return "12:00"
	}
}

// ItemUpdate carries a partial update for a schedule item. Nil fields are
// left untouched. The store shallow-merges without re-validating time
// ranges; the time-range editor enforces end > start and the minimum
// duration before calling Update.
type ItemUpdate struct {
	Day       *model.Day
	TimeSlot  *model.TimeSlot
	StartTime *string
	EndTime   *string
	Mood      *model.Mood
	Notes     *string
}

// Schedule is the in-memory store of placed activities. It preserves
// insertion order; display and export layers sort by start time
// themselves. The caller (application shell) owns persistence.
type Schedule struct {
	items []model.ScheduleItem
}

// New creates an empty schedule.
func New() *Schedule {
	return &Schedule{}
}

// Add places an activity into a day and slot with the slot's default
// start time and no explicit end time. The item's mood follows the
// activity, falling back to happy. Returns the created item.
func (s *Schedule) Add(activity model.Activity, day model.Day, slot model.TimeSlot) model.ScheduleItem {
	mood := activity.Mood
	if mood == "" {
		mood = model.MoodHappy
	}

	item := model.ScheduleItem{
		ID:        uuid.New().String(),
		Activity:  activity,
		Day:       day,
		TimeSlot:  slot,
		StartTime: DefaultStartTime(slot),
		Mood:      mood,
	}

	s.items = append(s.items, item)
	return item
}

// Update shallow-merges the given fields into the matching item.
// Unknown ids are a no-op.
func (s *Schedule) Update(id string, u ItemUpdate) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if u.Day != nil {
			s.items[i].Day = *u.Day
		}
		if u.TimeSlot != nil {
			s.items[i].TimeSlot = *u.TimeSlot
		}
		if u.StartTime != nil {
			s.items[i].StartTime = *u.StartTime
		}
		if u.EndTime != nil {
			s.items[i].EndTime = *u.EndTime
		}
		if u.Mood != nil {
			s.items[i].Mood = *u.Mood
		}
		if u.Notes != nil {
			s.items[i].Notes = *u.Notes
		}
		return
	}
}

// Remove deletes the item with the given id. Removing an unknown id is
// a no-op.
func (s *Schedule) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Move relocates an item to a new day and slot, leaving its times
// untouched. A moved item may therefore disagree with its new slot;
// ValidateItemTimeSlot flags the drift instead of correcting it, so a
// drag never silently rewrites a user-chosen time.
func (s *Schedule) Move(id string, day model.Day, slot model.TimeSlot) {
	s.Update(id, ItemUpdate{Day: &day, TimeSlot: &slot})
}

// Replace swaps the entire item list, e.g. after generation or loading
// a saved plan.
func (s *Schedule) Replace(items []model.ScheduleItem) {
	s.items = append([]model.ScheduleItem(nil), items...)
}

// Items returns a copy of all items in insertion order.
func (s *Schedule) Items() []model.ScheduleItem {
	return append([]model.ScheduleItem(nil), s.items...)
}

// ItemsFor returns the items placed in the given day and slot, in
// insertion order.
func (s *Schedule) ItemsFor(day model.Day, slot model.TimeSlot) []model.ScheduleItem {
	var out []model.ScheduleItem
	for _, item := range s.items {
		if item.Day == day && item.TimeSlot == slot {
			out = append(out, item)
		}
	}
	return out
}

// Get returns the item with the given id.
func (s *Schedule) Get(id string) (model.ScheduleItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.ScheduleItem{}, false
}

// Len returns the number of placed items.
func (s *Schedule) Len() int {
	return len(s.items)
}

// Conflicts returns the items overlapping the given item's time range on
// the same day.
func (s *Schedule) Conflicts(item model.ScheduleItem) []model.ScheduleItem {
	return ConflictingItems(item, s.items)
}
