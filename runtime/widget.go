// Package runtime runs widget trees against a terminal backend.
package runtime

// Widget is a node in the UI tree.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider exposes a widget's children for tree walks.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes the bounds assigned at layout.
type BoundsProvider interface {
	Bounds() Rect
}

// Focusable widgets can receive keyboard focus.
type Focusable interface {
	Widget
	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// Rect is a cell rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Constraints bound a widget's measured size.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Loose returns constraints with zero minimums.
func Loose(width, height int) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	size.Width = clamp(size.Width, c.MinWidth, c.MaxWidth)
	size.Height = clamp(size.Height, c.MinHeight, c.MaxHeight)
	return size
}

// MaxSize returns the largest allowed size.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}

// HandleResult reports whether a message was consumed and any commands it produced.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled marks a message as consumed.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets a message continue to the next receiver.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand consumes a message and emits commands.
func WithCommand(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}
