package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/binder/internal/logging"
)

func TestNewWritesToFileAtLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "binder.log")

	logger, closeFn, err := logging.New(logging.Options{Level: "warn", Path: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden message")
	logger.Warn("page turn dropped", "page", 2)
	if err := closeFn(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "hidden message") {
		t.Fatalf("info record should be filtered: %s", content)
	}
	if !strings.Contains(content, "page turn dropped") || !strings.Contains(content, "page=2") {
		t.Fatalf("expected warn record, got: %s", content)
	}
}

func TestNewJSONFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "binder.json")

	logger, closeFn, err := logging.New(logging.Options{Format: "json", Path: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("switch collection", "collection", "genesis")
	closeFn()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), `"collection":"genesis"`) {
		t.Fatalf("expected json record, got: %s", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml", Path: "stderr"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closeFn, err := logging.New(logging.Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("discard logger should not be enabled")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): got %v want %v", in, got, want)
		}
	}
}
