package widgets

import (
	"github.com/odvcencio/furry-hooks/runtime"
)

// Field pairs a Label with an Input through the input's stable id.
// The label line shows the caption followed by the id it points at.
type Field struct {
	Base
	label *Label
	input *Input
}

// NewField creates a labelled input. id must be unique within the tree.
func NewField(caption, id, placeholder string) *Field {
	input := NewInput()
	input.SetID(id)
	input.SetLabel(caption)
	input.SetPlaceholder(placeholder)

	label := NewLabel(caption)
	label.SetFor(id)
	label.SetStyle(DefaultTheme().Muted)

	return &Field{label: label, input: input}
}

// Label returns the caption widget.
func (f *Field) Label() *Label {
	return f.label
}

// Input returns the text input.
func (f *Field) Input() *Input {
	return f.input
}

// Measure returns two lines at the available width.
func (f *Field) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: 2})
}

// Layout stacks the label above the input.
func (f *Field) Layout(bounds runtime.Rect) {
	f.Base.Layout(bounds)
	f.label.Layout(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: min(1, bounds.Height)})
	f.input.Layout(runtime.Rect{X: bounds.X, Y: bounds.Y + 1, Width: bounds.Width, Height: min(1, max(0, bounds.Height-1))})
}

// Render draws both lines.
func (f *Field) Render(ctx runtime.RenderContext) {
	f.label.Render(ctx)
	f.input.Render(ctx)
}

// ChildWidgets returns the label and input.
func (f *Field) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{f.label, f.input}
}
