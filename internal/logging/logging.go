// Package logging wires zerolog into the projection engine's Logger
// interface for the binaries; library code stays on the interface.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. Verbose enables debug-level output.
func New(verbose bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter builds a root logger on an explicit writer (used in tests).
func NewWithWriter(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// EngineLogger adapts a zerolog.Logger to the calculation.Logger interface.
type EngineLogger struct {
	L zerolog.Logger
}

func (e EngineLogger) Debugf(format string, args ...any) { e.L.Debug().Msgf(format, args...) }
func (e EngineLogger) Infof(format string, args ...any)  { e.L.Info().Msgf(format, args...) }
func (e EngineLogger) Warnf(format string, args ...any)  { e.L.Warn().Msgf(format, args...) }
func (e EngineLogger) Errorf(format string, args ...any) { e.L.Error().Msgf(format, args...) }
