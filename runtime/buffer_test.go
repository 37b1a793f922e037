package runtime

import (
	"testing"

	"github.com/odvcencio/furry-hooks/backend"
)

func TestBuffer_SetOnlyMarksChanges(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.ClearDirty()

	buf.Set(1, 1, ' ', backend.DefaultStyle())
	if buf.IsDirty() {
		t.Fatalf("expected unchanged write to stay clean")
	}
	buf.Set(1, 1, 'x', backend.DefaultStyle())
	buf.Set(3, 0, 'y', backend.DefaultStyle())
	if got := buf.DirtyCount(); got != 2 {
		t.Fatalf("expected 2 dirty cells, got %d", got)
	}
	if r := buf.DirtyRect(); r != (Rect{X: 1, Y: 0, Width: 3, Height: 2}) {
		t.Fatalf("unexpected dirty rect %+v", r)
	}

	var spans [][3]int
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		spans = append(spans, [3]int{y, startX, endX})
	})
	if len(spans) != 2 || spans[0] != [3]int{0, 3, 4} || spans[1] != [3]int{1, 1, 2} {
		t.Fatalf("unexpected spans %v", spans)
	}
}

func TestBuffer_SetStringWideRunes(t *testing.T) {
	buf := NewBuffer(8, 1)
	if used := buf.SetString(0, 0, "a日b", backend.DefaultStyle()); used != 4 {
		t.Fatalf("expected 4 columns used, got %d", used)
	}
	if buf.Get(1, 0).Rune != '日' || buf.Get(3, 0).Rune != 'b' {
		t.Fatalf("expected wide rune to occupy two cells")
	}
}

func TestBuffer_ResizeKeepsContent(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetString(0, 0, "abc", backend.DefaultStyle())
	buf.Resize(5, 2)
	if buf.Get(2, 0).Rune != 'c' {
		t.Fatalf("expected content preserved on grow")
	}
	if got := buf.DirtyCount(); got != 10 {
		t.Fatalf("expected full redraw after resize, got %d dirty", got)
	}
}
