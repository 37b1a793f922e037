package widgets

import (
	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/trace"
)

// TraceView shows the newest entries of a trace ring, oldest at the top.
type TraceView struct {
	Base
	ring  *trace.Ring
	rows  int
	style backend.Style
	seen  uint64
}

// NewTraceView creates a console showing up to rows lines.
func NewTraceView(ring *trace.Ring, rows int) *TraceView {
	return &TraceView{ring: ring, rows: max(1, rows), style: DefaultTheme().Muted}
}

// Rows returns the number of visible lines.
func (t *TraceView) Rows() int {
	return t.rows
}

// Changed reports whether entries arrived since the last render.
func (t *TraceView) Changed() bool {
	return t.ring != nil && t.ring.Total() != t.seen
}

// Measure reserves rows lines at full width.
func (t *TraceView) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: t.rows})
}

// Render draws the tail of the ring.
func (t *TraceView) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Width == 0 || bounds.Height == 0 || t.ring == nil {
		return
	}
	t.seen = t.ring.Total()
	entries := t.ring.Tail(bounds.Height)
	for row := 0; row < bounds.Height; row++ {
		text := ""
		if row < len(entries) {
			text = entries[row].String()
		}
		writePadded(ctx.Buffer, bounds.X, bounds.Y+row, bounds.Width, text, t.style)
	}
}

func (t *TraceView) AccessibleRole() accessibility.Role { return accessibility.RoleLog }
func (t *TraceView) AccessibleLabel() string           { return "trace" }
func (t *TraceView) AccessibleDescription() string     { return "" }
func (t *TraceView) AccessibleValue() *accessibility.ValueInfo {
	if t.ring == nil {
		return nil
	}
	entries := t.ring.Tail(t.rows)
	if len(entries) == 0 {
		return &accessibility.ValueInfo{}
	}
	return &accessibility.ValueInfo{Text: entries[len(entries)-1].String()}
}
