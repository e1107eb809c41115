package store_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"weekendly/internal/store"
)

func TestNewSQLiteStoreLogsSetup(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer s.Close()

	logged := buf.String()
	if !strings.Contains(logged, "applied schema migration") {
		t.Errorf("log output missing migration entry:\n%s", logged)
	}
	if !strings.Contains(logged, "version=1") {
		t.Errorf("log output missing migration version:\n%s", logged)
	}
	if !strings.Contains(logged, "plan database ready") {
		t.Errorf("log output missing ready entry:\n%s", logged)
	}
}
