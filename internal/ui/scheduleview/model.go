package scheduleview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/keys"
	"weekendly/internal/model"
	"weekendly/internal/schedule"
	"weekendly/internal/theme"
	"weekendly/internal/timeutil"
)

// AddRequestedMsg asks the parent to open the activity browser targeting
// the given day and slot.
type AddRequestedMsg struct {
	Day  model.Day
	Slot model.TimeSlot
}

// EditTimeRequestedMsg asks the parent to open the time editor for an item.
type EditTimeRequestedMsg struct {
	Item model.ScheduleItem
}

// ChangedMsg signals that the schedule was mutated and should be persisted.
type ChangedMsg struct{}

// Model is the weekend schedule grid: one column per active day, three
// slots per column. It owns cursor movement and in-grid mutations
// (move, remove); adding and time editing are delegated to the parent.
type Model struct {
	sched      *schedule.Schedule
	keys       *keys.KeyMap
	activeDays []model.Day
	dayIdx     int
	slotIdx    int
	itemIdx    int
	movingID   string
	width      int
	height     int
}

// New creates a schedule view over the shared schedule.
func New(sched *schedule.Schedule, k *keys.KeyMap, width, height int) Model {
	return Model{
		sched:      sched,
		keys:       k,
		activeDays: []model.Day{model.DaySaturday, model.DaySunday},
		width:      width,
		height:     height,
	}
}

// SetActiveDays replaces the visible day columns. The cursor is clamped
// to the new range.
func (m *Model) SetActiveDays(days []model.Day) {
	m.activeDays = model.CanonicalDays(days)
	if len(m.activeDays) == 0 {
		m.activeDays = []model.Day{model.DaySaturday, model.DaySunday}
	}
	if m.dayIdx >= len(m.activeDays) {
		m.dayIdx = len(m.activeDays) - 1
	}
	m.clampItem()
}

// ActiveDays returns the visible day columns.
func (m Model) ActiveDays() []model.Day {
	return m.activeDays
}

// Moving reports whether an item relocation is in progress.
func (m Model) Moving() bool {
	return m.movingID != ""
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the schedule view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.movingID != "" {
		return m.handleMoveKeys(keyMsg)
	}
	return m.handleNormalKeys(keyMsg)
}

// handleMoveKeys navigates the relocation target and commits or cancels
// the move.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
		}
	case key.Matches(msg, m.keys.Right):
		if m.dayIdx < len(m.activeDays)-1 {
			m.dayIdx++
		}
	case key.Matches(msg, m.keys.Up):
		if m.slotIdx > 0 {
			m.slotIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.slotIdx < len(model.SlotOrder)-1 {
			m.slotIdx++
		}

	case key.Matches(msg, m.keys.Select):
		m.sched.Move(m.movingID, m.currentDay(), m.currentSlot())
		id := m.movingID
		m.movingID = ""
		m.focusItem(id)
		return m, func() tea.Msg { return ChangedMsg{} }

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Move):
		id := m.movingID
		m.movingID = ""
		m.focusItem(id)
	}
	return m, nil
}

// handleNormalKeys processes cursor movement and item actions.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.dayIdx > 0 {
			m.dayIdx--
			m.clampItem()
		}

	case key.Matches(msg, m.keys.Right):
		if m.dayIdx < len(m.activeDays)-1 {
			m.dayIdx++
			m.clampItem()
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp()

	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown()

	case key.Matches(msg, m.keys.Add):
		day, slot := m.currentDay(), m.currentSlot()
		return m, func() tea.Msg {
			return AddRequestedMsg{Day: day, Slot: slot}
		}

	case key.Matches(msg, m.keys.Move):
		if item, ok := m.selectedItem(); ok {
			m.movingID = item.ID
		}

	case key.Matches(msg, m.keys.EditTime):
		if item, ok := m.selectedItem(); ok {
			return m, func() tea.Msg {
				return EditTimeRequestedMsg{Item: item}
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selectedItem(); ok {
			m.sched.Remove(item.ID)
			m.clampItem()
			return m, func() tea.Msg { return ChangedMsg{} }
		}
	}
	return m, nil
}

// moveCursorUp steps to the previous item, crossing into the previous
// slot when the top of the current slot is reached.
func (m *Model) moveCursorUp() {
	if m.itemIdx > 0 {
		m.itemIdx--
		return
	}
	if m.slotIdx > 0 {
		m.slotIdx--
		items := m.sched.ItemsFor(m.currentDay(), m.currentSlot())
		m.itemIdx = len(items) - 1
		if m.itemIdx < 0 {
			m.itemIdx = 0
		}
	}
}

// moveCursorDown steps to the next item, crossing into the next slot
// when the bottom of the current slot is reached.
func (m *Model) moveCursorDown() {
	items := m.sched.ItemsFor(m.currentDay(), m.currentSlot())
	if m.itemIdx < len(items)-1 {
		m.itemIdx++
		return
	}
	if m.slotIdx < len(model.SlotOrder)-1 {
		m.slotIdx++
		m.itemIdx = 0
	}
}

// clampItem keeps the item cursor inside the current slot's item list.
func (m *Model) clampItem() {
	items := m.sched.ItemsFor(m.currentDay(), m.currentSlot())
	if m.itemIdx >= len(items) {
		m.itemIdx = len(items) - 1
	}
	if m.itemIdx < 0 {
		m.itemIdx = 0
	}
}

// focusItem points the cursor at the given item wherever it now lives.
func (m *Model) focusItem(id string) {
	item, ok := m.sched.Get(id)
	if !ok {
		m.clampItem()
		return
	}
	for di, d := range m.activeDays {
		if d != item.Day {
			continue
		}
		m.dayIdx = di
		for si, s := range model.SlotOrder {
			if s != item.TimeSlot {
				continue
			}
			m.slotIdx = si
			for ii, it := range m.sched.ItemsFor(d, s) {
				if it.ID == id {
					m.itemIdx = ii
					return
				}
			}
		}
	}
	m.clampItem()
}

func (m Model) currentDay() model.Day {
	return m.activeDays[m.dayIdx]
}

func (m Model) currentSlot() model.TimeSlot {
	return model.SlotOrder[m.slotIdx]
}

// selectedItem returns the item under the cursor, if any.
func (m Model) selectedItem() (model.ScheduleItem, bool) {
	items := m.sched.ItemsFor(m.currentDay(), m.currentSlot())
	if m.itemIdx < 0 || m.itemIdx >= len(items) {
		return model.ScheduleItem{}, false
	}
	return items[m.itemIdx], true
}

// View renders the day columns side by side.
func (m Model) View() string {
	colWidth := m.width/len(m.activeDays) - 2
	if colWidth < 20 {
		colWidth = 20
	}

	cols := make([]string, len(m.activeDays))
	for i, day := range m.activeDays {
		cols[i] = m.renderDay(day, i, colWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderDay renders one day column with its three slots.
func (m Model) renderDay(day model.Day, dayIdx int, colWidth int) string {
	rows := []string{theme.DayTitleStyle.Render(dayLabel(day))}
	for slotIdx, slot := range model.SlotOrder {
		rows = append(rows, theme.SlotTitleStyle.Render(slotLabel(slot)))

		items := m.sched.ItemsFor(day, slot)
		if len(items) == 0 {
			empty := "  ·"
			if m.movingID != "" && dayIdx == m.dayIdx && slotIdx == m.slotIdx {
				empty = theme.MovingItemStyle.Render("· drop here ·")
			}
			rows = append(rows, theme.HelpStyle.Render(empty))
			continue
		}

		for itemIdx, item := range items {
			rows = append(rows, m.renderItem(item, dayIdx, slotIdx, itemIdx))
		}
		if m.movingID != "" && dayIdx == m.dayIdx && slotIdx == m.slotIdx {
			rows = append(rows, theme.MovingItemStyle.Render("· drop here ·"))
		}
	}

	return theme.DayColumnStyle.
		Width(colWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderItem renders one schedule item line with conflict and slot
// drift badges.
func (m Model) renderItem(
	item model.ScheduleItem,
	dayIdx, slotIdx, itemIdx int,
) string {
	line := fmt.Sprintf("%s %s", item.Activity.Icon, item.Activity.Name)
	if span := timespan(item); span != "" {
		line += " " + theme.HelpStyle.Render(span)
	}

	if len(m.sched.Conflicts(item)) > 0 {
		line += " " + theme.ConflictBadgeStyle.Render("⚠ overlap")
	}
	if !schedule.ValidateItemTimeSlot(item) {
		line += " " + theme.DriftBadgeStyle.Render("⏰ off-slot")
	}

	switch {
	case item.ID == m.movingID:
		return theme.MovingItemStyle.Render(line)
	case m.movingID == "" &&
		dayIdx == m.dayIdx && slotIdx == m.slotIdx && itemIdx == m.itemIdx:
		return theme.SelectedItemStyle.Render(line)
	default:
		return theme.ItemStyle.Render(line)
	}
}

// timespan formats the item's time range for display.
func timespan(item model.ScheduleItem) string {
	if item.StartTime == "" {
		return ""
	}
	end := item.EndTime
	if end == "" {
		end = timeutil.DefaultEndTime(item.StartTime, item.Activity.EstimatedTime)
	}
	if end == "" {
		return item.StartTime
	}
	return item.StartTime + "–" + end
}

func dayLabel(day model.Day) string {
	if day == "" {
		return ""
	}
	return string(day[0]-32) + string(day[1:])
}

func slotLabel(slot model.TimeSlot) string {
	switch slot {
	case model.SlotMorning:
		return "Morning"
	case model.SlotAfternoon:
		return "Afternoon"
	case model.SlotEvening:
		return "Evening"
	default:
		return string(slot)
	}
}

// SetSize updates the grid dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
