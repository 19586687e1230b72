package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds the structured logger shared by the binaries.
// An unknown level falls back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
