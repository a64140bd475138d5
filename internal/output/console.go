// Package output provides the leveled console for CLI status messages.
package output

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"ttask/internal/config"
)

// Console prints user-facing status lines: Info for completed operations,
// Warn for per-label no-ops and skips, Error for failures. Listings and
// reports never pass through here; commands write those straight to their
// output writer.
type Console struct {
	logger *log.Logger
}

// NewConsole builds a Console writing to w. Quiet raises the threshold so
// only errors get through; Debug lowers it.
func NewConsole(w io.Writer, quiet, debug, noColor bool) *Console {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	if noColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return &Console{logger: logger}
}

// ForConfig builds a Console on w honoring cfg's quiet, debug and color
// settings.
func ForConfig(w io.Writer, cfg *config.Config) *Console {
	return NewConsole(w, cfg.Quiet, cfg.Debug, cfg.NoColor)
}

// Info reports a completed operation.
func (c *Console) Info(msg string, keyvals ...any) {
	c.logger.Info(msg, keyvals...)
}

// Warn reports a skipped label or another defined no-op.
func (c *Console) Warn(msg string, keyvals ...any) {
	c.logger.Warn(msg, keyvals...)
}

// Error reports a failure.
func (c *Console) Error(msg string, keyvals ...any) {
	c.logger.Error(msg, keyvals...)
}

// Debug reports internal detail; visible only with debug logging on.
func (c *Console) Debug(msg string, keyvals ...any) {
	c.logger.Debug(msg, keyvals...)
}
