package demo

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/odvcencio/furry-hooks/runtime"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

// mountPage builds a page and mounts it on an unbound screen, so state
// changes rebuild synchronously.
func mountPage(t *testing.T, cfg Config) (*Page, *runtime.Screen) {
	t.Helper()
	page := NewPage(cfg)
	screen := runtime.NewScreen(100, 40)
	screen.SetRoot(page)
	t.Cleanup(page.Close)
	return page, screen
}

func screenText(screen *runtime.Screen) string {
	screen.Render()
	buf := screen.Buffer()
	w, h := buf.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteRune(buf.Get(x, y).Rune)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
