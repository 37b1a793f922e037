package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
)

// Section draws a rounded border with a title and one padded child.
type Section struct {
	Base
	title      string
	child      runtime.Widget
	border     backend.Style
	titleStyle backend.Style
	background backend.Style
	minHeight  int
}

// NewSection creates a titled section around child.
func NewSection(title string, child runtime.Widget) *Section {
	theme := DefaultTheme()
	return &Section{
		title:      title,
		child:      child,
		border:     theme.Border,
		titleStyle: theme.Title,
		background: theme.Text,
	}
}

// Title returns the section title.
func (s *Section) Title() string {
	return s.title
}

// SetMinHeight reserves at least h rows, border included.
func (s *Section) SetMinHeight(h int) {
	s.minHeight = h
}

// ChildWidgets returns the content widget.
func (s *Section) ChildWidgets() []runtime.Widget {
	if s.child == nil {
		return nil
	}
	return []runtime.Widget{s.child}
}

// Measure adds the border and one column of padding to the child.
func (s *Section) Measure(constraints runtime.Constraints) runtime.Size {
	inner := runtime.Size{}
	if s.child != nil {
		inner = s.child.Measure(runtime.Loose(max(0, constraints.MaxWidth-4), max(0, constraints.MaxHeight-2)))
	}
	size := runtime.Size{
		Width:  max(inner.Width+4, runewidth.StringWidth(s.title)+6),
		Height: max(inner.Height+2, s.minHeight),
	}
	return constraints.Constrain(size)
}

// Layout insets the child inside the border.
func (s *Section) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	if s.child == nil {
		return
	}
	inner := bounds.Inset(1)
	inner.X++
	inner.Width = max(0, inner.Width-2)
	s.child.Layout(inner)
}

// Render draws the frame, title and child.
func (s *Section) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}
	ctx.Buffer.Fill(bounds.Inset(1), ' ', s.background)
	ctx.Buffer.DrawRoundedBox(bounds, s.border)
	if s.title != "" && bounds.Width > 4 {
		title := truncateString(" "+s.title+" ", bounds.Width-4)
		ctx.Buffer.SetString(bounds.X+2, bounds.Y, title, s.titleStyle)
	}
	if s.child != nil {
		s.child.Render(ctx)
	}
}

func (s *Section) AccessibleRole() accessibility.Role        { return accessibility.RoleGroup }
func (s *Section) AccessibleLabel() string                   { return s.title }
func (s *Section) AccessibleDescription() string             { return "" }
func (s *Section) AccessibleValue() *accessibility.ValueInfo { return nil }
