package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"weekendly/internal/catalog"
	"weekendly/internal/model"
	"weekendly/internal/planner"
	"weekendly/internal/schedule"
	"weekendly/internal/store"
	"weekendly/internal/ui"
	"weekendly/internal/ui/browser"
	"weekendly/internal/ui/dayselect"
	"weekendly/internal/ui/exportform"
	helpview "weekendly/internal/ui/help"
	"weekendly/internal/ui/planform"
	"weekendly/internal/ui/saved"
	"weekendly/internal/ui/scheduleview"
	"weekendly/internal/ui/timeform"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewSchedule ViewState = iota
	ViewBrowser
	ViewDays
	ViewGenerate
	ViewTime
	ViewSaved
	ViewExport
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, layout,
// the shared schedule, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.SQLiteStore
	keys         *KeyMap
	sched        *schedule.Schedule
	gen          *planner.Generator
	weekendTheme model.Theme

	scheduleView scheduleview.Model
	browserView  browser.Model
	dayView      dayselect.Model
	planFormView planform.Model
	timeFormView timeform.Model
	savedView    saved.Model
	exportView   exportform.Model
	helpView     helpview.Model

	ready     bool
	statusMsg string
}

// New creates a new root application model with the given store and
// planner configuration.
func New(s *store.SQLiteStore, cfg *model.PlannerConfig) Model {
	keys := DefaultKeyMap()
	sched := schedule.New()

	m := Model{
		currentView:  ViewSchedule,
		store:        s,
		keys:         keys,
		sched:        sched,
		gen:          planner.New(catalog.All(), nil),
		weekendTheme: model.ThemeLazy,
		scheduleView: scheduleview.New(sched, keys, 80, 24),
		browserView:  browser.New(catalog.All(), keys, 80, 24),
		dayView:      dayselect.New(keys, 80, 24),
		planFormView: planform.New(80, 24),
		timeFormView: timeform.New(80, 24),
		savedView:    saved.New(s, keys, 80, 24),
		exportView:   exportform.New(80, 24),
		helpView:     helpview.New(keys, 80, 24),
	}

	if cfg != nil {
		if cfg.DefaultTheme != "" {
			m.weekendTheme = model.Theme(cfg.DefaultTheme)
		}
		if len(cfg.ActiveDays) > 0 {
			days := make([]model.Day, len(cfg.ActiveDays))
			for i, d := range cfg.ActiveDays {
				days[i] = model.Day(d)
			}
			m.scheduleView.SetActiveDays(days)
		}
	}

	return m
}

// Init loads the persisted current plan.
func (m Model) Init() tea.Cmd {
	return m.loadCurrent()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.scheduleView.SetSize(contentWidth, contentHeight)
		m.browserView.SetSize(contentWidth, contentHeight)
		m.dayView.SetSize(contentWidth, contentHeight)
		m.planFormView.SetSize(contentWidth, contentHeight)
		m.timeFormView.SetSize(contentWidth, contentHeight)
		m.savedView.SetSize(contentWidth, contentHeight)
		m.exportView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case currentLoadedMsg:
		if len(msg.snap.ScheduleItems) > 0 {
			m.sched.Replace(refreshActivities(msg.snap.ScheduleItems))
		}
		if msg.snap.Theme != "" {
			m.weekendTheme = msg.snap.Theme
		}
		if len(msg.snap.ActiveDays) > 0 {
			m.scheduleView.SetActiveDays(msg.snap.ActiveDays)
		}
		return m, nil

	case persistedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.statusMsg = "exported to " + msg.path
		}
		m.currentView = ViewSchedule
		return m, nil

	case scheduleview.AddRequestedMsg:
		m.previousView = m.currentView
		m.currentView = ViewBrowser
		m.browserView.SetTarget(msg.Day, msg.Slot)
		m.browserView.SetSuggestions(m.gen.ThemeSuggestions(m.weekendTheme, 3))
		return m, nil

	case scheduleview.EditTimeRequestedMsg:
		m.previousView = m.currentView
		m.currentView = ViewTime
		return m, m.timeFormView.Start(msg.Item)

	case scheduleview.ChangedMsg:
		return m, m.persistCurrent()

	case browser.ActivityChosenMsg:
		m.sched.Add(msg.Activity, msg.Day, msg.Slot)
		m.currentView = ViewSchedule
		m.statusMsg = "added " + msg.Activity.Name
		return m, m.persistCurrent()

	case browser.CloseMsg:
		m.currentView = ViewSchedule
		return m, nil

	case dayselect.DaysChosenMsg:
		m.scheduleView.SetActiveDays(msg.Days)
		m.currentView = ViewSchedule
		return m, m.persistCurrent()

	case dayselect.CloseMsg:
		m.currentView = ViewSchedule
		return m, nil

	case planform.GenerateRequestedMsg:
		m.weekendTheme = msg.Theme
		items := m.gen.GenerateRandomPlan(planner.Options{
			Theme:       msg.Theme,
			ActiveDays:  m.scheduleView.ActiveDays(),
			Preferences: msg.Preferences,
		})
		m.sched.Replace(items)
		m.currentView = ViewSchedule
		m.statusMsg = fmt.Sprintf("generated %d activities", len(items))
		return m, m.persistCurrent()

	case planform.CancelMsg:
		m.currentView = ViewSchedule
		return m, nil

	case timeform.TimeRangeSetMsg:
		m.sched.Update(msg.ItemID, schedule.ItemUpdate{
			StartTime: &msg.StartTime,
			EndTime:   &msg.EndTime,
		})
		m.currentView = ViewSchedule
		return m, m.persistCurrent()

	case timeform.CancelMsg:
		m.currentView = ViewSchedule
		return m, nil

	case saved.PlanChosenMsg:
		m.sched.Replace(refreshActivities(msg.Plan.Snapshot.ScheduleItems))
		if msg.Plan.Snapshot.Theme != "" {
			m.weekendTheme = msg.Plan.Snapshot.Theme
		}
		if len(msg.Plan.Snapshot.ActiveDays) > 0 {
			m.scheduleView.SetActiveDays(msg.Plan.Snapshot.ActiveDays)
		}
		m.currentView = ViewSchedule
		m.statusMsg = "loaded " + msg.Plan.Name
		return m, m.persistCurrent()

	case saved.CloseMsg:
		m.currentView = ViewSchedule
		return m, nil

	case exportform.ExportRequestedMsg:
		return m, m.runExport(msg)

	case exportform.CancelMsg:
		m.currentView = ViewSchedule
		return m, nil

	case tea.KeyMsg:
		if mdl, cmd, handled := m.handleGlobalKey(msg); handled {
			return mdl, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that switch views or quit. Returns
// handled=false when the key should go to the active view instead.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// Text inputs own the keyboard in these views.
	formActive := m.currentView == ViewGenerate ||
		m.currentView == ViewTime ||
		m.currentView == ViewExport ||
		m.currentView == ViewSaved ||
		m.currentView == ViewBrowser

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true

	case "q":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			return m, tea.Quit, true
		}

	case "?":
		if formActive {
			break
		}
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case "g":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.previousView = m.currentView
			m.currentView = ViewGenerate
			return m, m.planFormView.Start(m.weekendTheme), true
		}

	case "d":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.previousView = m.currentView
			m.currentView = ViewDays
			m.dayView.Start(m.scheduleView.ActiveDays())
			return m, nil, true
		}

	case "s":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.previousView = m.currentView
			m.currentView = ViewSaved
			return m, m.savedView.StartSave(m.snapshot()), true
		}

	case "o":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.previousView = m.currentView
			m.currentView = ViewSaved
			return m, m.savedView.Init(), true
		}

	case "e":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.previousView = m.currentView
			m.currentView = ViewExport
			return m, m.exportView.Start(), true
		}

	case "w":
		if m.currentView == ViewSchedule && !m.scheduleView.Moving() {
			m.weekendTheme = nextTheme(m.weekendTheme)
			return m, m.persistCurrent(), true
		}

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
	}

	return m, nil, false
}

// refreshActivities re-reads the catalog definition for each item whose
// activity still exists there, so persisted plans pick up curated edits
// to the built-in pool. Items referencing retired activities keep their
// stored copy.
func refreshActivities(items []model.ScheduleItem) []model.ScheduleItem {
	for i := range items {
		if a, ok := catalog.ByID(items[i].Activity.ID); ok {
			items[i].Activity = a
		}
	}
	return items
}

// nextTheme cycles through the weekend themes in declaration order.
func nextTheme(t model.Theme) model.Theme {
	for i, candidate := range model.Themes {
		if candidate == t {
			return model.Themes[(i+1)%len(model.Themes)]
		}
	}
	return model.Themes[0]
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewSchedule:
		m.scheduleView, cmd = m.scheduleView.Update(msg)
	case ViewBrowser:
		m.browserView, cmd = m.browserView.Update(msg)
	case ViewDays:
		m.dayView, cmd = m.dayView.Update(msg)
	case ViewGenerate:
		m.planFormView, cmd = m.planFormView.Update(msg)
	case ViewTime:
		m.timeFormView, cmd = m.timeFormView.Update(msg)
	case ViewSaved:
		m.savedView, cmd = m.savedView.Update(msg)
	case ViewExport:
		m.exportView, cmd = m.exportView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Weekendly", m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewSchedule:
		return m.scheduleView.View()
	case ViewBrowser:
		return m.browserView.View()
	case ViewDays:
		return m.dayView.View()
	case ViewGenerate:
		return m.planFormView.View()
	case ViewTime:
		return m.timeFormView.View()
	case ViewSaved:
		return m.savedView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// headerStatus summarizes the plan state for the header's right side.
func (m Model) headerStatus() string {
	conflicts := 0
	items := m.sched.Items()
	for _, item := range items {
		if schedule.HasTimeConflicts(item, items) {
			conflicts++
		}
	}

	status := fmt.Sprintf("%s · %d activities", m.weekendTheme, m.sched.Len())
	if conflicts > 0 {
		status += fmt.Sprintf(" · ⚠ %d overlapping", conflicts)
	}
	return status
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMsg != "" && m.currentView == ViewSchedule {
		return m.statusMsg
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewBrowser:
		return "enter add | / search | tab category | esc back"
	case ViewDays:
		return "space toggle | 2 weekend | 3 long weekend | enter apply | esc back"
	case ViewGenerate, ViewTime, ViewExport:
		return "enter submit | esc cancel"
	case ViewSaved:
		return "enter load | r rename | x delete | esc back"
	default:
		if m.scheduleView.Moving() {
			return "h/l day | j/k slot | enter drop | esc cancel"
		}
		return "q quit | ? help | a add | m move | t time | g generate | d days | s save | o plans | e export"
	}
}

// snapshot builds the persistence envelope for the current plan.
func (m Model) snapshot() model.PlanSnapshot {
	return model.NewPlanSnapshot(
		m.sched.Items(),
		m.weekendTheme,
		m.scheduleView.ActiveDays(),
	)
}
