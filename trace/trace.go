// Package trace wires the injected diagnostic sink used by every demo section.
//
// Each section logs through its own named zap logger, so trace lines stay
// distinguishable ("harness", "derived", "reducer", ...) while the caller decides
// where they end up: a development console, a file, the on-screen ring, or an
// observer in tests.
package trace

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Section names a trace source.
type Section string

const (
	SectionPage    Section = "page"
	SectionHarness Section = "harness"
	SectionDerived Section = "derived"
	SectionReducer Section = "reducer"
	SectionIDs     Section = "ids"
)

// Sections hands out per-section loggers derived from one base logger.
type Sections struct {
	base *zap.Logger
}

// NewSections wraps logger. A nil logger discards everything.
func NewSections(logger *zap.Logger) Sections {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Sections{base: logger}
}

// For returns the logger for section.
func (s Sections) For(section Section) *zap.Logger {
	if s.base == nil {
		return zap.NewNop()
	}
	return s.base.Named(string(section))
}

// Base returns the unnamed logger.
func (s Sections) Base() *zap.Logger {
	if s.base == nil {
		return zap.NewNop()
	}
	return s.base
}

// NewConsole builds a development-style logger writing to w, teed into the
// optional extra cores.
func NewConsole(w io.Writer, level zapcore.LevelEnabler, extra ...zapcore.Core) *zap.Logger {
	cores := make([]zapcore.Core, 0, len(extra)+1)
	if w != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(w)),
			level,
		))
	}
	for _, core := range extra {
		if core != nil {
			cores = append(cores, core)
		}
	}
	return zap.New(zapcore.NewTee(cores...))
}
