package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/keys"
	"weekendly/internal/theme"
)

// sectionTitles label the keymap's FullHelp groups in workflow order:
// moving around the grid, editing it, generating, then keeping/sharing.
var sectionTitles = []string{
	"Get Around",
	"Build the Schedule",
	"Plan the Weekend",
	"Keep & Share",
}

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   keys,
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the keymap as titled sections laid out side by side,
// with the compact one-line help as a footer.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Weekendly Keys")

	groups := m.keys.FullHelp()
	cols := make([]string, 0, len(groups))
	for i, group := range groups {
		heading := fmt.Sprintf("Section %d", i+1)
		if i < len(sectionTitles) {
			heading = sectionTitles[i]
		}

		rows := []string{theme.DayTitleStyle.Render(heading)}
		for _, binding := range group {
			h := binding.Help()
			rows = append(rows,
				fmt.Sprintf("%-7s", h.Key)+theme.HelpStyle.Render(h.Desc))
		}

		cols = append(cols, lipgloss.NewStyle().
			MarginRight(3).
			Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	}

	sections := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	m.help.Width = m.width - 4
	footer := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left, title, sections, "", footer)

	return theme.BorderStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
