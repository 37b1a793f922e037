package widgets

import "github.com/odvcencio/furry-hooks/runtime"

// Axis is the direction a Stack lays out children.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
	// Split gives each child an equal share of the width and the full height.
	Split
)

// Stack lays children out in a line with a fixed gap.
// Vertical stacks give every child the full width and its measured height;
// horizontal stacks give every child its measured width and one row height.
type Stack struct {
	Base
	axis     Axis
	gap      int
	children []runtime.Widget
}

// VStack creates a vertical stack.
func VStack(children ...runtime.Widget) *Stack {
	return &Stack{axis: Vertical, children: children}
}

// HStack creates a horizontal stack.
func HStack(children ...runtime.Widget) *Stack {
	return &Stack{axis: Horizontal, gap: 1, children: children}
}

// Columns creates a stack that splits its width evenly between children.
func Columns(children ...runtime.Widget) *Stack {
	return &Stack{axis: Split, gap: 1, children: children}
}

// WithGap sets the gap between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(0, gap)
	return s
}

// SetChildren replaces the children.
func (s *Stack) SetChildren(children ...runtime.Widget) {
	s.children = children
}

// ChildWidgets returns the children.
func (s *Stack) ChildWidgets() []runtime.Widget {
	return s.children
}

// Measure sums children along the axis.
func (s *Stack) Measure(constraints runtime.Constraints) runtime.Size {
	if s.axis == Split {
		size := runtime.Size{Width: constraints.MaxWidth}
		for i, child := range s.children {
			_, w := s.share(i, constraints.MaxWidth)
			size.Height = max(size.Height, child.Measure(runtime.Loose(w, constraints.MaxHeight)).Height)
		}
		return constraints.Constrain(size)
	}
	var size runtime.Size
	for i, child := range s.children {
		cs := child.Measure(runtime.Loose(constraints.MaxWidth, constraints.MaxHeight))
		gap := 0
		if i > 0 {
			gap = s.gap
		}
		if s.axis == Vertical {
			size.Height += cs.Height + gap
			size.Width = max(size.Width, cs.Width)
		} else {
			size.Width += cs.Width + gap
			size.Height = max(size.Height, cs.Height)
		}
	}
	if s.axis == Vertical {
		size.Width = constraints.MaxWidth
	}
	return constraints.Constrain(size)
}

// Layout positions children.
func (s *Stack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	x, y := bounds.X, bounds.Y
	right := bounds.X + bounds.Width
	bottom := bounds.Y + bounds.Height
	for i, child := range s.children {
		if s.axis == Split {
			offset, w := s.share(i, bounds.Width)
			child.Layout(runtime.Rect{X: bounds.X + offset, Y: bounds.Y, Width: w, Height: bounds.Height})
			continue
		}
		if s.axis == Vertical {
			avail := max(0, bottom-y)
			cs := child.Measure(runtime.Loose(bounds.Width, avail))
			child.Layout(runtime.Rect{X: x, Y: y, Width: bounds.Width, Height: min(cs.Height, avail)})
			y += cs.Height + s.gap
			continue
		}
		cs := child.Measure(runtime.Loose(max(0, right-x), bounds.Height))
		child.Layout(runtime.Rect{X: x, Y: y, Width: cs.Width, Height: min(cs.Height, bounds.Height)})
		x += cs.Width + s.gap
	}
}

// share returns the x offset and width of column i; the last column takes
// the remainder.
func (s *Stack) share(i, width int) (offset, w int) {
	n := len(s.children)
	if n == 0 {
		return 0, 0
	}
	avail := max(0, width-s.gap*(n-1))
	col := avail / n
	offset = i * (col + s.gap)
	if i == n-1 {
		return offset, max(0, width-offset)
	}
	return offset, col
}

// Render draws the children.
func (s *Stack) Render(ctx runtime.RenderContext) {
	for _, child := range s.children {
		child.Render(ctx)
	}
}
