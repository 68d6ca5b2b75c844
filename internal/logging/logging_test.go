package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestSetupNonTerminalUsesStderr(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	logger, closer, err := Setup(Options{Level: slog.LevelInfo, Stderr: f, File: filepath.Join(t.TempDir(), "unused.log")})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	logger.Info("to stderr")

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to stderr") {
		t.Errorf("log not written to stderr file: %q", data)
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath: %v", err)
	}
	if want := filepath.Join(dir, "undercover", "undercover.log"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
