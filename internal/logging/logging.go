// Package logging builds the loggers used while discovering files.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DebugEnabled reports whether the environment asks for debug output.
// CI step debugging (ACTIONS_STEP_DEBUG, RUNNER_DEBUG) also turns it on.
func DebugEnabled() bool {
	if os.Getenv("SCANBUILDER_DEBUG") == "1" {
		return true
	}
	if strings.EqualFold(os.Getenv("ACTIONS_STEP_DEBUG"), "true") {
		return true
	}
	if os.Getenv("RUNNER_DEBUG") == "1" {
		return true
	}
	return false
}

// New returns a logger writing to stderr with the given prefix.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter is New with an explicit destination. The level is Warn
// unless DebugEnabled, in which case it is Debug.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	level := log.WarnLevel
	if DebugEnabled() {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBU").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("205"))
	logger.SetStyles(styles)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
