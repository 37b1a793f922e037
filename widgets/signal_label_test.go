package widgets

import (
	"testing"

	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
)

func TestSignalLabel_LifecycleQueue(t *testing.T) {
	sig := state.NewSignal("start")
	queue := state.NewQueue()
	label := NewSignalLabel(sig, queue)

	label.Mount()
	if label.text != "start" {
		t.Fatalf("expected initial text start, got %q", label.text)
	}

	sig.Set("next")
	if label.text != "start" {
		t.Fatalf("expected text to update after flush, got %q", label.text)
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 queued callback, got %d", flushed)
	}
	if label.text != "next" {
		t.Fatalf("expected updated text next, got %q", label.text)
	}

	label.Unmount()
	sig.Set("final")
	if flushed := queue.Flush(); flushed != 0 {
		t.Fatalf("expected no queued callbacks after unmount, got %d", flushed)
	}
	if label.text != "next" {
		t.Fatalf("expected text to remain next after unmount, got %q", label.text)
	}
}

func TestSignalLabel_BindUsesAppScheduler(t *testing.T) {
	sig := state.NewSignal("a")
	label := NewSignalLabel(sig, nil)
	app := runtime.NewApp(runtime.AppConfig{})

	label.Bind(app.Services())
	label.Mount()
	sig.Set("b")
	if label.Text() != "a" {
		t.Fatalf("expected update deferred to the app queue, got %q", label.Text())
	}
	label.Unmount()
	label.Unbind()
}

func TestSignalLabel_RenderTruncates(t *testing.T) {
	label := NewSignalLabel(state.NewSignal("parent renders: 12"), nil)
	label.Mount()
	buf := runtime.NewBuffer(10, 1)
	label.Layout(runtime.Rect{Width: 10, Height: 1})
	label.Render(runtime.RenderContext{Buffer: buf})
	if got := rowText(buf, 0); got != "parent ..." {
		t.Fatalf("expected truncated text, got %q", got)
	}
}

func TestSignalLabel_CurrentReadsUnmountedSource(t *testing.T) {
	sig := state.NewSignal("start")
	label := NewSignalLabel(sig, nil)

	sig.Set("next")
	if label.Text() != "start" {
		t.Fatalf("expected stale text start while unmounted, got %q", label.Text())
	}
	if got := label.Current(); got != "next" {
		t.Fatalf("expected current text next, got %q", got)
	}
}
