// Package logger sets up the append-only operation log. The returned
// logger is handed to the command loop at construction; nothing else
// in the program logs.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath returns the log file location for app under
// XDG_STATE_HOME, falling back to ~/.local/state.
func DefaultPath(app string) (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, app, app+".log"), nil
}

// New returns a logger appending JSON records to path, creating the
// file and its directory as needed. With an empty path the default
// state-dir location is used. The file is never explicitly closed;
// process exit takes care of it.
func New(app, path string) (*slog.Logger, error) {
	if path == "" {
		p, err := DefaultPath(app)
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})), nil
}

// Fallback returns a stderr logger for use when New fails.
func Fallback() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
