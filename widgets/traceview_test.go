package widgets

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/odvcencio/furry-hooks/trace"
)

func TestTraceView_ShowsNewestEntries(t *testing.T) {
	ring := trace.NewRing(8, zapcore.DebugLevel)
	logger := zap.New(ring).Named("reducer")
	view := NewTraceView(ring, 2)

	logger.Info("first")
	logger.Info("second")
	logger.Info("third", zap.Int("count", 1))
	if !view.Changed() {
		t.Fatalf("expected view to notice new entries")
	}

	buf := renderWidget(view, 40, 2)
	if got := rowText(buf, 0); got != "reducer: second" {
		t.Fatalf("unexpected first row %q", got)
	}
	if got := rowText(buf, 1); got != "reducer: third count=1" {
		t.Fatalf("unexpected second row %q", got)
	}
	if view.Changed() {
		t.Fatalf("expected render to mark entries seen")
	}
}
