package theme

import (
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DayColumnStyle wraps a single day column in the schedule grid.
var DayColumnStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DayTitleStyle renders the day heading above each column.
var DayTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// SlotTitleStyle renders the slot heading inside a day column.
var SlotTitleStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ItemStyle is the base style for a scheduled item line.
var ItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the item under the cursor.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// MovingItemStyle marks the item currently being relocated.
var MovingItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorMagenta).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorMagenta)

// ConflictBadgeStyle flags items whose time range overlaps another item.
var ConflictBadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// DriftBadgeStyle flags items whose start time disagrees with their slot.
var DriftBadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CategoryStyle returns a color-coded style for an activity category.
func CategoryStyle(category model.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch category {
	case model.CategoryFood:
		return base.Foreground(ColorOrange)
	case model.CategoryOutdoor:
		return base.Foreground(ColorGreen)
	case model.CategoryWellness:
		return base.Foreground(ColorMagenta)
	case model.CategorySocial:
		return base.Foreground(ColorYellow)
	case model.CategoryEntertainment:
		return base.Foreground(ColorBlue)
	case model.CategoryCreative:
		return base.Foreground(ColorMagenta)
	case model.CategoryFitness:
		return base.Foreground(ColorRed)
	case model.CategoryIndoor:
		return base.Foreground(ColorGray)
	default:
		return base.Foreground(ColorGray)
	}
}

// MoodGlyph returns a compact mood indicator for list rows.
func MoodGlyph(mood model.Mood) string {
	switch mood {
	case model.MoodHappy:
		return "😊"
	case model.MoodRelaxed:
		return "😌"
	case model.MoodEnergized:
		return "⚡"
	default:
		return " "
	}
}
