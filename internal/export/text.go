// Package export renders read-only views of a plan snapshot: a plain
// text itinerary, the JSON interchange envelope, and an email draft.
// The store keeps items in insertion order, so every exporter sorts by
// start time itself.
package export

import (
	"fmt"
	"sort"
	"strings"

	"weekendly/internal/model"
	"weekendly/internal/timeutil"
)

// RenderText renders the snapshot as a plain-text itinerary grouped by
// day, with items ordered by start time.
func RenderText(snap model.PlanSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weekend Plan — %s\n", themeLabel(snap.Theme))
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	for _, day := range activeDays(snap) {
		fmt.Fprintf(&b, "\n%s\n", dayLabel(day))
		b.WriteString(strings.Repeat("-", len(dayLabel(day))))
		b.WriteString("\n")

		items := itemsForDay(snap.ScheduleItems, day)
		if len(items) == 0 {
			b.WriteString("  (free)\n")
			continue
		}

		for _, item := range items {
			fmt.Fprintf(&b, "  %s  %s %s\n", timespan(item), item.Activity.Icon, item.Activity.Name)
			if item.Notes != "" {
				fmt.Fprintf(&b, "          %s\n", item.Notes)
			}
		}
	}

	return b.String()
}

// activeDays returns the snapshot's day columns in canonical order,
// falling back to the days that actually hold items when the envelope
// carries none.
func activeDays(snap model.PlanSnapshot) []model.Day {
	if len(snap.ActiveDays) > 0 {
		return model.CanonicalDays(snap.ActiveDays)
	}

	var days []model.Day
	for _, item := range snap.ScheduleItems {
		days = append(days, item.Day)
	}
	return model.CanonicalDays(days)
}

// itemsForDay filters and start-time-sorts the items placed on one day.
// Items with malformed times sort last.
func itemsForDay(items []model.ScheduleItem, day model.Day) []model.ScheduleItem {
	var out []model.ScheduleItem
	for _, item := range items {
		if item.Day == day {
			out = append(out, item)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := timeutil.ParseTime(out[i].StartTime)
		b := timeutil.ParseTime(out[j].StartTime)
		if a == timeutil.Invalid {
			return false
		}
		if b == timeutil.Invalid {
			return true
		}
		return a < b
	})

	return out
}

// timespan renders "09:00–10:30", or just the start when no end time
// has been set.
func timespan(item model.ScheduleItem) string {
	if item.EndTime == "" {
		return item.StartTime + "       "
	}
	return item.StartTime + "–" + item.EndTime
}

func dayLabel(day model.Day) string {
	return strings.ToUpper(string(day[:1])) + string(day[1:])
}

func themeLabel(theme model.Theme) string {
	switch theme {
	case model.ThemeLazy:
		return "Lazy Weekend"
	case model.ThemeAdventurous:
		return "Adventurous Weekend"
	case model.ThemeFamily:
		return "Family Weekend"
	default:
		return string(theme)
	}
}
