package browser

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"weekendly/internal/model"
	"weekendly/internal/theme"
)

// ActivityItem wraps a model.Activity so it can be used in a bubbles/list.
type ActivityItem struct {
	Activity model.Activity
}

// FilterValue returns the string used for fuzzy filtering.
func (i ActivityItem) FilterValue() string { return i.Activity.Name }

// Title returns the activity name for the list.
func (i ActivityItem) Title() string { return i.Activity.Name }

// Description returns a short summary line for the list.
func (i ActivityItem) Description() string { return i.Activity.Description }

// ActivityDelegate implements list.ItemDelegate for rendering activities.
type ActivityDelegate struct{}

// Height returns the number of lines each item takes.
func (d ActivityDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ActivityDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ActivityDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single activity line.
func (d ActivityDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ai, ok := item.(ActivityItem)
	if !ok {
		return
	}

	a := ai.Activity

	catBadge := theme.CategoryStyle(a.Category).Render(string(a.Category))

	setting := "outdoor"
	if a.IsIndoor {
		setting = "indoor"
	}

	line := fmt.Sprintf(
		"%s %s %s %s · %dm · %s",
		a.Icon, a.Name, catBadge, theme.MoodGlyph(a.Mood),
		a.EstimatedTime, setting,
	)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
