package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"weekendly/internal/app"
	"weekendly/internal/model"
	"weekendly/internal/store"
)

// setupLogging points slog at a log file next to the database. The
// terminal belongs to the TUI, so nothing may log to stdout or stderr
// once the program starts.
func setupLogging(dataDir string) io.Closer {
	logFile, err := os.OpenFile(
		filepath.Join(dataDir, "weekendly.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))
	return logFile
}

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to the config file")
	dbPath := flag.String("db", "", "path to the SQLite database (overrides config)")
	flag.Parse()

	cfg, err := model.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Storage.Path
	if *dbPath != "" {
		path = *dbPath
	}
	if path == "" {
		path = model.DefaultDatabasePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating data directory: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(filepath.Dir(path)); logFile != nil {
		defer logFile.Close()
	}
	slog.Info("starting weekendly", slog.String("db", path))

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		slog.Error("opening store", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "opening store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	p := tea.NewProgram(app.New(s, &cfg.Planner), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("running app", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "running app: %v\n", err)
		os.Exit(1)
	}
}
