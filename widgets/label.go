package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
)

// Label draws a single line of text.
type Label struct {
	Base
	text      string
	style     backend.Style
	alignment Alignment
	htmlFor   string
}

// NewLabel creates a left-aligned label.
func NewLabel(text string) *Label {
	return &Label{text: text, style: DefaultTheme().Text}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// SetStyle sets the label style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// SetAlignment sets text alignment.
func (l *Label) SetAlignment(align Alignment) {
	l.alignment = align
}

// SetFor associates the label with the element carrying id.
func (l *Label) SetFor(id string) {
	l.htmlFor = id
}

// For returns the id of the labelled element, if any.
func (l *Label) For() string {
	return l.htmlFor
}

// display is the rendered line; a label bound to an element shows its id.
func (l *Label) display() string {
	if l.htmlFor == "" {
		return l.text
	}
	return l.text + "  for=" + l.htmlFor
}

// Measure returns the size needed for the label.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.display()),
		Height: 1,
	})
}

// Render draws the label.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	text := truncateString(l.display(), bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), l.alignment)
	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', l.style)
	ctx.Buffer.SetString(x, bounds.Y, text, l.style)
}

func (l *Label) AccessibleRole() accessibility.Role        { return accessibility.RoleText }
func (l *Label) AccessibleLabel() string                   { return l.text }
func (l *Label) AccessibleDescription() string             { return l.htmlFor }
func (l *Label) AccessibleValue() *accessibility.ValueInfo { return nil }
