package dayselect

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/keys"
	"weekendly/internal/model"
	"weekendly/internal/theme"
)

// DaysChosenMsg carries the confirmed set of active days.
type DaysChosenMsg struct {
	Days []model.Day
}

// CloseMsg signals the parent to close the selector without applying.
type CloseMsg struct{}

// Model is the active-day selector: a toggle list over the whole week
// with shortcuts for the common weekend and long-weekend shapes.
type Model struct {
	keys     *keys.KeyMap
	selected map[model.Day]bool
	cursor   int
	width    int
	height   int
}

// New creates a day selector model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:     k,
		selected: map[model.Day]bool{},
		width:    width,
		height:   height,
	}
}

// Start initializes the selector with the currently active days.
func (m *Model) Start(active []model.Day) {
	m.selected = map[model.Day]bool{}
	for _, d := range active {
		m.selected[d] = true
	}
	m.cursor = 0
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selector.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(model.DayOrder)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Select):
		days := m.chosenDays()
		if len(days) == 0 {
			days = []model.Day{model.DaySaturday, model.DaySunday}
		}
		return m, func() tea.Msg { return DaysChosenMsg{Days: days} }

	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	}

	switch keyMsg.String() {
	case " ":
		day := model.DayOrder[m.cursor]
		if m.selected[day] {
			delete(m.selected, day)
		} else {
			m.selected[day] = true
		}

	case "2":
		m.selected = map[model.Day]bool{
			model.DaySaturday: true,
			model.DaySunday:   true,
		}

	case "3":
		m.selected = map[model.Day]bool{
			model.DayFriday:   true,
			model.DaySaturday: true,
			model.DaySunday:   true,
		}
	}
	return m, nil
}

// chosenDays returns the selection in canonical order.
func (m Model) chosenDays() []model.Day {
	var days []model.Day
	for _, d := range model.DayOrder {
		if m.selected[d] {
			days = append(days, d)
		}
	}
	return days
}

// View renders the day toggle list.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Choose Your Days")

	rows := []string{title}
	for i, day := range model.DayOrder {
		mark := "[ ]"
		if m.selected[day] {
			mark = "[x]"
		}
		line := mark + " " + dayLabel(day)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ItemStyle.Render(line)
		}
		rows = append(rows, line)
	}

	rows = append(rows, "",
		theme.HelpStyle.Render("space toggle · 2 weekend · 3 long weekend · enter apply"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func dayLabel(day model.Day) string {
	if day == "" {
		return ""
	}
	return string(day[0]-32) + string(day[1:])
}

// SetSize updates the selector dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
