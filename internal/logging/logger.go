// Package logging adapts github.com/phuslu/log to the calculation engine's
// Logger interface.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/phuslu/log"
)

// Console is a leveled, human-readable logger.
type Console struct {
	logger log.Logger
}

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		return log.WarnLevel, nil
	case "debug", "info", "warn", "error":
		return log.ParseLevel(name), nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

// NewConsole writes plain console lines to w at or above level.
func NewConsole(w io.Writer, level log.Level) *Console {
	return &Console{
		logger: log.Logger{
			Level: level,
			Writer: &log.ConsoleWriter{
				Writer:      w,
				ColorOutput: false,
				QuoteString: true,
			},
		},
	}
}

func (c *Console) Debugf(format string, args ...any) { c.logger.Debug().Msgf(format, args...) }
func (c *Console) Infof(format string, args ...any)  { c.logger.Info().Msgf(format, args...) }
func (c *Console) Warnf(format string, args ...any)  { c.logger.Warn().Msgf(format, args...) }
func (c *Console) Errorf(format string, args ...any) { c.logger.Error().Msgf(format, args...) }
