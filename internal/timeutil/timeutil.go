// Package timeutil implements the wall-clock time model for the planner:
// conversion between "HH:MM" strings and minute-of-day offsets, duration
// arithmetic, and slot-boundary membership.
//
// Parsing never panics or returns an error. Malformed input yields the
// Invalid sentinel and callers are expected to guard; these functions sit
// on the render path and must degrade instead of failing.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"

	"weekendly/internal/model"
)

// Invalid is the sentinel returned by ParseTime for malformed input.
const Invalid = -1

// ParseTime converts an "HH:MM" string to minutes since midnight.
// It accepts single-digit hours ("9:30") and hours past 23 ("24:00"),
// but minutes must be two digits in [0, 59]. Malformed input returns
// Invalid.
func ParseTime(s string) int {
	h, m, ok := strings.Cut(s, ":")
	if !ok || h == "" || len(m) != 2 {
		return Invalid
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return Invalid
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return Invalid
	}

	return hours*60 + minutes
}

// FormatTime renders minutes since midnight as a zero-padded "HH:MM"
// string. Negative values render as the empty string, matching the
// unset-time convention. Values are not wrapped at the top: 1470
// formats as "24:30". Callers must keep minutes in [0, 1440) or accept
// the >24h display artifact.
func FormatTime(minutes int) string {
	if minutes < 0 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes shifts an "HH:MM" time by delta minutes. Malformed input
// or a shift that lands before midnight yields the empty string.
func AddMinutes(t string, delta int) string {
	m := ParseTime(t)
	if m == Invalid {
		return ""
	}
	return FormatTime(m + delta)
}

// DefaultEndTime derives an end time from a start time and an estimated
// duration in minutes.
func DefaultEndTime(start string, estimatedMinutes int) string {
	return AddMinutes(start, estimatedMinutes)
}

// SlotRange is a half-open [Start, End) minute-of-day interval.
type SlotRange struct {
	Start int
	End   int
}

// SlotBounds returns the boundary range for a named slot. Unknown slots
// map to the degenerate [0, 0) range, which contains no time at all.
func SlotBounds(slot model.TimeSlot) SlotRange {
	switch slot {
	case model.SlotMorning:
		return SlotRange{Start: 6 * 60, End: 12 * 60}
	case model.SlotAfternoon:
		return SlotRange{Start: 12 * 60, End: 18 * 60}
	case model.SlotEvening:
		return SlotRange{Start: 18 * 60, End: 24 * 60}
	default:
		return SlotRange{}
	}
}

// IsTimeInSlot reports whether t falls inside the slot's half-open
// boundary range. Malformed times and unknown slots are simply not in
// the slot.
func IsTimeInSlot(t string, slot model.TimeSlot) bool {
	m := ParseTime(t)
	if m == Invalid {
		return false
	}
	b := SlotBounds(slot)
	return m >= b.Start && m < b.End
}

// SlotFor returns the slot whose boundary range contains t, and false
// when t is malformed or outside every slot (before 06:00).
func SlotFor(t string) (model.TimeSlot, bool) {
	for _, slot := range model.SlotOrder {
		if IsTimeInSlot(t, slot) {
			return slot, true
		}
	}
	return "", false
}
