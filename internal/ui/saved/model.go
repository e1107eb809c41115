package saved

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/keys"
	"weekendly/internal/model"
	"weekendly/internal/store"
	"weekendly/internal/theme"
)

// PlanChosenMsg is sent when the user loads a saved plan into the schedule.
type PlanChosenMsg struct {
	Plan model.SavedPlan
}

// CloseMsg signals the parent to close the plan library.
type CloseMsg struct{}

type planMode int

const (
	modeList planMode = iota
	modeSaveName
	modeRename
	modeConfirmDelete
)

type formBindings struct {
	name    string
	confirm bool
}

type plansLoadedMsg struct {
	plans []model.SavedPlan
}

type planSavedMsg struct{ err error }
type planDeletedMsg struct{ err error }

// Model is the saved-plan library: browse, load, save, rename and
// delete named plan snapshots.
type Model struct {
	mode        planMode
	store       *store.SQLiteStore
	keys        *keys.KeyMap
	plans       []model.SavedPlan
	selectedIdx int
	pending     model.PlanSnapshot
	renameID    string
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new plan library model.
func New(s *store.SQLiteStore, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:  modeList,
		store: s,
		keys:  k,
		fb:    &formBindings{},
		width: width, height: height,
	}
}

// Init loads the saved plans from the store.
func (m Model) Init() tea.Cmd {
	return m.loadPlans()
}

// StartSave opens the name prompt for saving the given snapshot.
func (m *Model) StartSave(snap model.PlanSnapshot) tea.Cmd {
	m.mode = modeSaveName
	m.pending = snap
	m.fb.name = defaultPlanName(snap)
	m.form = m.buildNameForm("Save Plan As")
	return tea.Batch(m.loadPlans(), m.form.Init())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case plansLoadedMsg:
		m.plans = msg.plans
		if m.selectedIdx >= len(m.plans) && m.selectedIdx > 0 {
			m.selectedIdx = len(m.plans) - 1
		}
		return m, nil

	case planSavedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Plan saved"
		}
		m.mode = modeList
		return m, m.loadPlans()

	case planDeletedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMsg = "Plan deleted"
		}
		m.mode = modeList
		return m, m.loadPlans()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	default:
		return m.updateActiveForm(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.plans)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.selectedIdx < len(m.plans) {
			plan := m.plans[m.selectedIdx]
			return m, func() tea.Msg { return PlanChosenMsg{Plan: plan} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Delete):
		if m.selectedIdx < len(m.plans) {
			m.mode = modeConfirmDelete
			m.fb.confirm = false
			m.confirmForm = m.buildConfirmForm(m.plans[m.selectedIdx].Name)
			return m, m.confirmForm.Init()
		}
		return m, nil
	}

	if msg.String() == "r" && m.selectedIdx < len(m.plans) {
		plan := m.plans[m.selectedIdx]
		m.mode = modeRename
		m.renameID = plan.ID
		m.fb.name = plan.Name
		m.form = m.buildNameForm("Rename Plan")
		return m, m.form.Init()
	}

	return m, nil
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeSaveName, modeRename:
		if m.form == nil {
			return m, nil
		}
		mdl, cmd := m.form.Update(msg)
		if f, ok := mdl.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			if m.mode == modeRename {
				return m, m.renamePlan(m.renameID, m.fb.name)
			}
			return m, m.savePlan(m.fb.name, m.pending)
		}
		if m.form.State == huh.StateAborted {
			m.mode = modeList
			return m, nil
		}
		return m, cmd

	case modeConfirmDelete:
		if m.confirmForm == nil {
			return m, nil
		}
		mdl, cmd := m.confirmForm.Update(msg)
		if f, ok := mdl.(*huh.Form); ok {
			m.confirmForm = f
		}
		if m.confirmForm.State == huh.StateCompleted {
			if m.fb.confirm && m.selectedIdx < len(m.plans) {
				return m, m.deletePlan(m.plans[m.selectedIdx].ID)
			}
			m.mode = modeList
			return m, nil
		}
		if m.confirmForm.State == huh.StateAborted {
			m.mode = modeList
			return m, nil
		}
		return m, cmd
	}

	return m, nil
}

// View renders the plan library.
func (m Model) View() string {
	switch m.mode {
	case modeSaveName, modeRename:
		if m.form == nil {
			return ""
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case modeConfirmDelete:
		if m.confirmForm == nil {
			return ""
		}
		return lipgloss.NewStyle().Padding(1, 2).Render(m.confirmForm.View())
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Saved Plans")

	rows := []string{title}
	if len(m.plans) == 0 {
		rows = append(rows, theme.HelpStyle.Render(
			"No saved plans yet. Press s on the schedule to save one."))
	}
	for i, plan := range m.plans {
		line := fmt.Sprintf(
			"%s · %d activities · %s",
			plan.Name,
			len(plan.Snapshot.ScheduleItems),
			plan.UpdatedAt.Format("Jan 02 15:04"),
		)
		if i == m.selectedIdx {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ItemStyle.Render(line)
		}
		rows = append(rows, line)
	}

	if m.statusMsg != "" {
		rows = append(rows, "", theme.HelpStyle.Render(m.statusMsg))
	}
	rows = append(rows, "",
		theme.HelpStyle.Render("enter load · r rename · x delete · esc back"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the library dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildNameForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("My perfect weekend").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithWidth(m.formWidth())
}

func (m *Model) buildConfirmForm(name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete plan %q?", name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth())
}

func (m Model) loadPlans() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		plans, err := s.GetPlans(context.Background())
		if err != nil {
			return plansLoadedMsg{plans: nil}
		}
		return plansLoadedMsg{plans: plans}
	}
}

func (m Model) savePlan(name string, snap model.PlanSnapshot) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		_, err := s.SavePlan(context.Background(), strings.TrimSpace(name), snap)
		return planSavedMsg{err: err}
	}
}

func (m Model) renamePlan(id, name string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.RenamePlan(context.Background(), id, strings.TrimSpace(name))
		return planSavedMsg{err: err}
	}
}

func (m Model) deletePlan(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.DeletePlan(context.Background(), id)
		return planDeletedMsg{err: err}
	}
}

// defaultPlanName proposes a name based on the snapshot's theme and date.
func defaultPlanName(snap model.PlanSnapshot) string {
	label := "Weekend"
	switch snap.Theme {
	case model.ThemeLazy:
		label = "Lazy Weekend"
	case model.ThemeAdventurous:
		label = "Adventurous Weekend"
	case model.ThemeFamily:
		label = "Family Weekend"
	}
	return label + " · " + time.Now().Format("Jan 02")
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
