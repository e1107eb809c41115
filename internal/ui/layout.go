package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weekendly/internal/theme"
)

// frameRows is the number of terminal rows the frame itself consumes:
// one header line and one status bar line.
const frameRows = 2

// Layout sizes the frame shared by every view: a header bar, the day
// grid (or whichever view is active), and a status bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout for the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentWidth returns the width available to the active view.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the rows available to the active view.
func (l Layout) ContentHeight() int {
	return l.Height - frameRows
}

// RenderHeader renders the header bar: app title on the left, plan
// status (theme, activity count, conflicts) flushed right.
func (l Layout) RenderHeader(title string, status string) string {
	left := theme.HeaderStyle.Render(title)
	right := theme.HeaderStyle.Render(status)
	return left + l.barGap(left, right, theme.HeaderStyle) + right
}

// RenderStatusBar renders the bottom bar carrying key hints or the
// latest status message.
func (l Layout) RenderStatusBar(hints string) string {
	bar := theme.StatusBarStyle.Render(hints)
	return bar + l.barGap(bar, "", theme.StatusBarStyle)
}

// RenderWithFrame stacks header, content and status bar into the full
// terminal frame.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	body := lipgloss.NewStyle().
		Height(l.ContentHeight()).
		Render(content)
	return header + "\n" + body + "\n" + statusBar
}

// barGap fills the space between rendered bar segments with the bar's
// own background so the bar spans the full terminal width.
func (l Layout) barGap(left, right string, barStyle lipgloss.Style) string {
	gap := l.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Background(barStyle.GetBackground()).
		Render(strings.Repeat(" ", gap))
}
