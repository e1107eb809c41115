package browser

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/keys"
	"weekendly/internal/model"
	"weekendly/internal/theme"
)

// ActivityChosenMsg is sent when the user picks an activity to schedule.
type ActivityChosenMsg struct {
	Activity model.Activity
	Day      model.Day
	Slot     model.TimeSlot
}

// CloseMsg signals the parent to close the browser without choosing.
type CloseMsg struct{}

// Model is the activity browser view: a filterable catalog list from
// which activities are added to the schedule.
type Model struct {
	list        list.Model
	catalog     []model.Activity
	keys        *keys.KeyMap
	searchMode  bool
	searchInput textinput.Model
	catIndex    int // 0 = all categories, i>0 = model.Categories[i-1]
	targetDay   model.Day
	targetSlot  model.TimeSlot
	suggestions []model.Activity
	width       int
	height      int
}

// New creates a new activity browser over the given catalog.
func New(catalog []model.Activity, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ActivityDelegate{}, width, height-2)
	l.Title = "Activities"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search activities..."
	si.Prompt = "/ "
	si.Width = width - 4

	m := Model{
		list:        l,
		catalog:     catalog,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
	m.applyFilters()
	return m
}

// SetTarget records the day and slot the chosen activity will land in.
func (m *Model) SetTarget(day model.Day, slot model.TimeSlot) {
	m.targetDay = day
	m.targetSlot = slot
}

// SetSuggestions replaces the theme-based picks shown above the list.
func (m *Model) SetSuggestions(picks []model.Activity) {
	m.suggestions = picks
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(keyMsg)
		}
		return m.handleNormalKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while the search bar is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.applyFilters()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.applyFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilters()
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(ActivityItem)
		if !ok {
			return m, nil
		}
		day, slot := m.targetDay, m.targetSlot
		return m, func() tea.Msg {
			return ActivityChosenMsg{
				Activity: item.Activity,
				Day:      day,
				Slot:     slot,
			}
		}

	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }
	}

	switch msg.String() {
	case "/":
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case "tab":
		m.catIndex = (m.catIndex + 1) % (len(model.Categories) + 1)
		m.applyFilters()
		return m, nil

	case "shift+tab":
		m.catIndex--
		if m.catIndex < 0 {
			m.catIndex = len(model.Categories)
		}
		m.applyFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyFilters rebuilds the visible list from the catalog using the
// current search query and category filter.
func (m *Model) applyFilters() {
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))

	var items []list.Item
	for _, a := range m.catalog {
		if m.catIndex > 0 && a.Category != model.Categories[m.catIndex-1] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		items = append(items, ActivityItem{Activity: a})
	}

	m.list.SetItems(items)
	m.list.Title = m.listTitle()
}

// listTitle returns the list heading reflecting the active category filter.
func (m Model) listTitle() string {
	if m.catIndex == 0 {
		return "Activities"
	}
	return "Activities · " + string(model.Categories[m.catIndex-1])
}

// View renders the browser.
func (m Model) View() string {
	target := theme.HelpStyle.Render(
		"adding to " + string(m.targetDay) + " / " + string(m.targetSlot) +
			" · tab category · / search",
	)

	head := []string{target}
	if strip := m.renderSuggestions(); strip != "" {
		head = append(head, strip)
	}

	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		head = append(head, searchBar, m.list.View())
		return lipgloss.JoinVertical(lipgloss.Left, head...)
	}

	if len(m.list.Items()) == 0 {
		empty := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height - 1).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No matching activities.\nTry a different search or category.")
		head = append(head, empty)
		return lipgloss.JoinVertical(lipgloss.Left, head...)
	}

	head = append(head, m.list.View())
	return lipgloss.JoinVertical(lipgloss.Left, head...)
}

// renderSuggestions formats the theme picks as a one-line strip, empty
// when there are none.
func (m Model) renderSuggestions() string {
	if len(m.suggestions) == 0 {
		return ""
	}
	parts := make([]string, len(m.suggestions))
	for i, a := range m.suggestions {
		parts[i] = a.Icon + " " + a.Name
	}
	return theme.SlotTitleStyle.Render("Try: " + strings.Join(parts, " · "))
}

// SetSize updates the browser dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
