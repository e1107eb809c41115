package exportform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/theme"
)

// Format identifies an export output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatEmail Format = "email"
)

// ExportRequestedMsg carries the confirmed export settings.
type ExportRequestedMsg struct {
	Format Format
	Path   string
	To     string
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	format string
	path   string
	to     string
}

// Model is the export form: output format, destination file and, for
// the email format, a recipient address.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new export form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form.
func (m *Model) Start() tea.Cmd {
	m.fb.format = string(FormatText)
	m.fb.path = "weekend-plan.txt"
	m.fb.to = ""
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

// View renders the export form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Export Plan")

	content := title + "\n" + m.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("Plain text summary", string(FormatText)),
					huh.NewOption("JSON snapshot", string(FormatJSON)),
					huh.NewOption("Email (.eml)", string(FormatEmail)),
				).
				Value(&m.fb.format),
			huh.NewInput().
				Title("File").
				Placeholder("weekend-plan.txt").
				Value(&m.fb.path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("file path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Send To (email format only)").
				Placeholder("friend@example.com").
				Value(&m.fb.to),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	format := Format(m.fb.format)
	path := strings.TrimSpace(m.fb.path)
	to := strings.TrimSpace(m.fb.to)
	return func() tea.Msg {
		return ExportRequestedMsg{Format: format, Path: path, To: to}
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
