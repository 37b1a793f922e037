package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSections_NamesLoggers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sections := NewSections(zap.New(core))

	sections.For(SectionReducer).Info("reducer -> INCR")
	sections.For(SectionDerived).Info("recompute")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "reducer", entries[0].LoggerName)
	require.Equal(t, "derived", entries[1].LoggerName)
}

func TestSections_NilLoggerDiscards(t *testing.T) {
	var zero Sections
	require.NotPanics(t, func() {
		zero.For(SectionPage).Info("dropped")
		NewSections(nil).Base().Info("dropped")
	})
}

func TestRing_KeepsNewest(t *testing.T) {
	ring := NewRing(3, zapcore.DebugLevel)
	logger := zap.New(ring).Named("harness")

	for _, msg := range []string{"a", "b", "c", "d"} {
		logger.Info(msg, zap.Int("n", len(msg)))
	}

	entries := ring.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "b", entries[0].Message)
	require.Equal(t, "d", entries[2].Message)
	require.Equal(t, "harness: d n=1", entries[2].String())
	require.EqualValues(t, 4, ring.Total())

	tail := ring.Tail(1)
	require.Len(t, tail, 1)
	require.Equal(t, "d", tail[0].Message)
}

func TestRing_WithFields(t *testing.T) {
	ring := NewRing(4, zapcore.InfoLevel)
	logger := zap.New(ring).With(zap.String("section", "ids"))

	logger.Debug("hidden")
	logger.Info("ids", zap.String("first", ":r0:"))

	entries := ring.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "first=:r0: section=ids", entries[0].Fields)
}

func TestNewConsole_TeesIntoRing(t *testing.T) {
	var out bytes.Buffer
	ring := NewRing(8, zapcore.DebugLevel)
	logger := NewConsole(&out, zapcore.DebugLevel, ring)

	NewSections(logger).For(SectionPage).Info("page render")
	require.NoError(t, logger.Sync())

	require.Contains(t, out.String(), "page render")
	require.Len(t, ring.Entries(), 1)
	require.Equal(t, "page", ring.Entries()[0].Logger)
}
