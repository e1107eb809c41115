package timeform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/model"
	"weekendly/internal/theme"
	"weekendly/internal/timeutil"
)

// MinDuration is the shortest time range the editor accepts, in minutes.
const MinDuration = 15

// TimeRangeSetMsg carries a validated time range for a schedule item.
type TimeRangeSetMsg struct {
	ItemID    string
	StartTime string
	EndTime   string
}

// CancelMsg is dispatched when the user abandons the editor.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	start string
	end   string
}

// Model is the time-range editor for a single schedule item. It enforces
// a valid HH:MM range of at least MinDuration minutes; a start time
// outside the item's slot is allowed but flagged in the view.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	itemID string
	name   string
	slot   model.TimeSlot
	width  int
	height int
}

// New creates a new time editor model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the editor for the given item, prefilling its
// current range. An item without times starts at the slot default.
func (m *Model) Start(item model.ScheduleItem) tea.Cmd {
	m.itemID = item.ID
	m.name = item.Activity.Name
	m.slot = item.TimeSlot

	m.fb.start = item.StartTime
	if m.fb.start == "" {
		bounds := timeutil.SlotBounds(item.TimeSlot)
		m.fb.start = timeutil.FormatTime(bounds.Start)
	}
	m.fb.end = item.EndTime
	if m.fb.end == "" {
		m.fb.end = timeutil.DefaultEndTime(m.fb.start, item.Activity.EstimatedTime)
	}

	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the editor.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the editor with a live slot drift warning.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Time Range · " + m.name)

	content := title + "\n" + m.form.View()

	if start := strings.TrimSpace(m.fb.start); start != "" {
		if timeutil.ParseTime(start) != timeutil.Invalid &&
			!timeutil.IsTimeInSlot(start, m.slot) {
			text := "⏰ " + start + " falls outside the " + string(m.slot) + " slot"
			if actual, ok := timeutil.SlotFor(start); ok {
				text += " (that's " + string(actual) + ")"
			}
			content += "\n" + theme.DriftBadgeStyle.Render(text)
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the editor dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start").
				Placeholder("HH:MM").
				Value(&m.fb.start).
				Validate(validateClock),
			huh.NewInput().
				Title("End").
				Placeholder("HH:MM").
				Value(&m.fb.end).
				Validate(m.validateEnd),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// validateClock checks that the value parses as an HH:MM clock time.
func validateClock(s string) error {
	if timeutil.ParseTime(strings.TrimSpace(s)) == timeutil.Invalid {
		return fmt.Errorf("use HH:MM, e.g. 09:30")
	}
	return nil
}

// validateEnd checks the end time against the current start value.
func (m *Model) validateEnd(s string) error {
	if err := validateClock(s); err != nil {
		return err
	}
	start := timeutil.ParseTime(strings.TrimSpace(m.fb.start))
	end := timeutil.ParseTime(strings.TrimSpace(s))
	if start == timeutil.Invalid {
		return nil
	}
	if end <= start {
		return fmt.Errorf("end must be after start")
	}
	if end-start < MinDuration {
		return fmt.Errorf("plan at least %d minutes", MinDuration)
	}
	return nil
}

func (m Model) handleSubmit() tea.Cmd {
	id := m.itemID
	start := strings.TrimSpace(m.fb.start)
	end := strings.TrimSpace(m.fb.end)
	return func() tea.Msg {
		return TimeRangeSetMsg{ItemID: id, StartTime: start, EndTime: end}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}
