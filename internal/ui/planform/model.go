package planform

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/catalog"
	"weekendly/internal/model"
	"weekendly/internal/theme"
)

// GenerateRequestedMsg carries the confirmed generation settings.
type GenerateRequestedMsg struct {
	Theme       model.Theme
	Preferences model.GenerationPreferences
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// settingNone, settingIndoor and settingOutdoor are the values of the
// indoor/outdoor preference selector.
const (
	settingNone    = "none"
	settingIndoor  = "indoor"
	settingOutdoor = "outdoor"
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	theme     string
	maxPerDay int
	setting   string
	avoid     []string
}

// Model is the auto-generate form: weekend theme, activity density and
// filters for the random plan generator.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new generation form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the current theme preselected.
func (m *Model) Start(current model.Theme) tea.Cmd {
	m.fb.theme = string(current)
	m.fb.maxPerDay = model.DefaultMaxActivitiesPerDay
	m.fb.setting = settingNone
	m.fb.avoid = nil
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the form.
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

// View renders the generation form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Surprise Me")

	content := title + "\n" + m.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	avoidOpts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		avoidOpts[i] = huh.NewOption(string(c), string(c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weekend Theme").
				Options(
					huh.NewOption(themeOptionLabel("Lazy Weekend", model.ThemeLazy), string(model.ThemeLazy)),
					huh.NewOption(themeOptionLabel("Adventurous", model.ThemeAdventurous), string(model.ThemeAdventurous)),
					huh.NewOption(themeOptionLabel("Family Time", model.ThemeFamily), string(model.ThemeFamily)),
				).
				Value(&m.fb.theme),
			huh.NewSelect[int]().
				Title("Activities Per Day (max)").
				Options(
					huh.NewOption("1 - keep it light", 1),
					huh.NewOption("2 - balanced", 2),
					huh.NewOption("3 - packed", 3),
				).
				Value(&m.fb.maxPerDay),
			huh.NewSelect[string]().
				Title("Setting").
				Options(
					huh.NewOption("No preference", settingNone),
					huh.NewOption("Indoor only", settingIndoor),
					huh.NewOption("Outdoor only", settingOutdoor),
				).
				Value(&m.fb.setting),
			huh.NewMultiSelect[string]().
				Title("Skip Categories").
				Options(avoidOpts...).
				Value(&m.fb.avoid),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// themeOptionLabel annotates a theme choice with the number of catalog
// activities eligible for it.
func themeOptionLabel(label string, t model.Theme) string {
	return fmt.Sprintf("%s (%d activities)", label, len(catalog.ForTheme(t)))
}

func (m Model) handleSubmit() tea.Cmd {
	prefs := model.GenerationPreferences{
		PreferIndoor:        m.fb.setting == settingIndoor,
		PreferOutdoor:       m.fb.setting == settingOutdoor,
		MaxActivitiesPerDay: m.fb.maxPerDay,
	}
	for _, c := range m.fb.avoid {
		prefs.AvoidCategories = append(prefs.AvoidCategories, model.Category(c))
	}

	t := model.Theme(m.fb.theme)
	return func() tea.Msg {
		return GenerateRequestedMsg{Theme: t, Preferences: prefs}
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
