package model

// Day identifies a weekday column in the schedule.
type Day string

const (
	DayFriday    Day = "friday"
	DaySaturday  Day = "saturday"
	DaySunday    Day = "sunday"
	DayMonday    Day = "monday"
	DayTuesday   Day = "tuesday"
	DayWednesday Day = "wednesday"
	DayThursday  Day = "thursday"
)

// DayOrder is the canonical ordering of days in a weekend plan: the
// weekend sits first, weekdays trail for extended breaks.
var DayOrder = []Day{
	DayFriday,
	DaySaturday,
	DaySunday,
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
}

// CanonicalDays returns days deduplicated and reordered into DayOrder.
func CanonicalDays(days []Day) []Day {
	want := make(map[Day]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	var out []Day
	for _, d := range DayOrder {
		if want[d] {
			out = append(out, d)
		}
	}
	return out
}

// TimeSlot names one of the three fixed day partitions.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// SlotOrder lists the slots in chronological order.
var SlotOrder = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ScheduleItem is a placed activity instance. StartTime and EndTime are
// "HH:MM" wall-clock strings; EndTime may be empty until the user edits
// the time range explicitly. TimeSlot is nominal and may drift from the
// slot StartTime falls in after a drag move; the drift is surfaced as a
// warning, never auto-corrected.
type ScheduleItem struct {
	ID        string   `json:"id"`
	Activity  Activity `json:"activity"`
	Day       Day      `json:"day"`
	TimeSlot  TimeSlot `json:"timeSlot"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime,omitempty"`
	Mood      Mood     `json:"mood"`
	Notes     string   `json:"notes"`
}

// GenerationPreferences tunes the plan generator. The indoor/outdoor
// preference only applies when exactly one of the two flags is set;
// conflicting or absent preferences impose no restriction.
type GenerationPreferences struct {
	PreferIndoor        bool       `json:"preferIndoor,omitempty"`
	PreferOutdoor       bool       `json:"preferOutdoor,omitempty"`
	MaxActivitiesPerDay int        `json:"maxActivitiesPerDay,omitempty"`
	AvoidCategories     []Category `json:"avoidCategories,omitempty"`
}

// DefaultMaxActivitiesPerDay applies when the preference is unset.
const DefaultMaxActivitiesPerDay = 3
