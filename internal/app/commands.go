package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"weekendly/internal/export"
	"weekendly/internal/model"
	"weekendly/internal/ui/exportform"
)

// currentLoadedMsg carries the persisted current plan at startup.
type currentLoadedMsg struct {
	snap model.PlanSnapshot
}

// persistedMsg reports the outcome of an autosave.
type persistedMsg struct {
	err error
}

// exportDoneMsg reports the outcome of a file export.
type exportDoneMsg struct {
	path string
	err  error
}

// loadCurrent returns a command that reads the current plan from the store.
func (m Model) loadCurrent() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		snap, err := s.LoadCurrent(context.Background())
		if err != nil {
			slog.Error("loading current plan", slog.String("error", err.Error()))
			return currentLoadedMsg{snap: model.PlanSnapshot{}}
		}
		return currentLoadedMsg{snap: snap}
	}
}

// persistCurrent returns a command that writes the current plan to the
// store. Every mutation of the schedule funnels through this autosave.
func (m Model) persistCurrent() tea.Cmd {
	s := m.store
	snap := m.snapshot()
	return func() tea.Msg {
		err := s.SaveCurrent(context.Background(), snap)
		if err != nil {
			slog.Error("autosaving current plan",
				slog.Int("items", len(snap.ScheduleItems)),
				slog.String("error", err.Error()),
			)
		}
		return persistedMsg{err: err}
	}
}

// runExport returns a command that writes the current plan to a file in
// the requested format.
func (m Model) runExport(req exportform.ExportRequestedMsg) tea.Cmd {
	snap := m.snapshot()
	return func() tea.Msg {
		f, err := os.Create(req.Path)
		if err != nil {
			return exportDoneMsg{path: req.Path, err: err}
		}
		defer f.Close()

		switch req.Format {
		case exportform.FormatText:
			_, err = f.WriteString(export.RenderText(snap))
		case exportform.FormatJSON:
			err = export.WriteJSON(f, snap)
		case exportform.FormatEmail:
			if req.To == "" {
				err = fmt.Errorf("email export needs a recipient")
				break
			}
			err = export.WriteEmail(f, snap, export.EmailOptions{
				From: "weekendly@localhost",
				To:   req.To,
			})
		default:
			err = fmt.Errorf("unknown export format %q", req.Format)
		}

		if err == nil {
			err = f.Sync()
		}
		if err != nil {
			slog.Error("exporting plan",
				slog.String("format", string(req.Format)),
				slog.String("path", req.Path),
				slog.String("error", err.Error()),
			)
		} else {
			slog.Info("exported plan",
				slog.String("format", string(req.Format)),
				slog.String("path", req.Path),
			)
		}
		return exportDoneMsg{path: req.Path, err: err}
	}
}
