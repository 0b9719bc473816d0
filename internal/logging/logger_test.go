package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger_CreatesDirAndLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, err := NewLogger(dir, "debug")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir missing: %v", err)
	}

	log.Info("test_message_from_logging_test")

	// lumberjack opens the file lazily on first write
	if _, err := os.Stat(filepath.Join(dir, "resourcemonitor.log")); err != nil {
		t.Fatalf("log file missing after write: %v", err)
	}
}

func TestNewLogger_StderrOnly(t *testing.T) {
	log, err := NewLogger("", "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debug("dropped_at_info_level")
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger("", "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
