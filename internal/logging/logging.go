package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Options configures Setup.
type Options struct {
	Level slog.Level

	// File is the log file used while stderr is a terminal. Empty means
	// DefaultLogPath.
	File string

	// Stderr defaults to os.Stderr.
	Stderr *os.File
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Setup picks the log destination. When stderr is a terminal the TUI owns
// it, so logs go to a file; otherwise they go to stderr. The returned
// closer releases the file, if one was opened.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if !IsTerminal(stderr) {
		return New(stderr, opts.Level), nopCloser{}, nil
	}

	path := opts.File
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, opts.Level), f, nil
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/undercover/undercover.log
// 2. ~/.local/state/undercover/undercover.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "undercover", "undercover.log"), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
