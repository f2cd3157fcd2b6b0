package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// logFileName is the log path relative to the XDG state directory.
const logFileName = "falldown/falldown.log"

// newLogger builds a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "falldown",
		ReportTimestamp: true,
	}), nil
}

// openLogFile opens the session log in the XDG state directory for appending.
// The terminal belongs to the game while it runs, so nothing is logged there.
func openLogFile() (*os.File, error) {
	path, err := xdg.StateFile(logFileName)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
