package schedule

import (
	"weekendly/internal/model"
	"weekendly/internal/timeutil"
)

// TimeRangesOverlap reports whether two half-open [start, end) ranges
// intersect. Touching endpoints do not overlap. Any malformed time makes
// the ranges not overlap rather than producing an error.
func TimeRangesOverlap(startA, endA, startB, endB string) bool {
	a1 := timeutil.ParseTime(startA)
	a2 := timeutil.ParseTime(endA)
	b1 := timeutil.ParseTime(startB)
	b2 := timeutil.ParseTime(endB)

	if a1 == timeutil.Invalid || a2 == timeutil.Invalid ||
		b1 == timeutil.Invalid || b2 == timeutil.Invalid {
		return false
	}

	return a1 < b2 && b1 < a2
}

// ConflictingItems returns every other item scheduled on the same day
// whose time range overlaps the given item's range. Items without an
// explicit end time never conflict. Conflicts are recomputed on demand;
// plans hold tens of items, not thousands.
func ConflictingItems(item model.ScheduleItem, all []model.ScheduleItem) []model.ScheduleItem {
	var conflicts []model.ScheduleItem
	for _, other := range all {
		if other.ID == item.ID || other.Day != item.Day {
			continue
		}
		if TimeRangesOverlap(item.StartTime, item.EndTime, other.StartTime, other.EndTime) {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}

// HasTimeConflicts reports whether the item overlaps any other item on
// the same day.
func HasTimeConflicts(item model.ScheduleItem, all []model.ScheduleItem) bool {
	return len(ConflictingItems(item, all)) > 0
}

// ValidateItemTimeSlot reports whether the item's explicit start time
// still falls inside its nominal slot. A mismatch is a display-time
// warning only; moves deliberately leave times untouched.
func ValidateItemTimeSlot(item model.ScheduleItem) bool {
	return timeutil.IsTimeInSlot(item.StartTime, item.TimeSlot)
}
