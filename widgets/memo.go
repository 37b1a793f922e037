package widgets

import (
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
)

// RenderFunc applies props to a child's persistent content widget.
type RenderFunc[P any] func(props P)

// child owns a content widget and counts the times it was rendered from props.
// Content is built once and mutated by render, so focus and bounds survive
// re-renders.
type child[P any] struct {
	Base
	content runtime.Widget
	render  RenderFunc[P]
	props   P
	built   bool
	renders int
}

func (c *child[P]) build(props P) {
	c.props = props
	c.built = true
	c.renders++
	if c.render != nil {
		c.render(props)
	}
}

// Props returns the props of the last render.
func (c *child[P]) Props() P {
	return c.props
}

// Renders returns how many times the child rendered from props.
func (c *child[P]) Renders() int {
	return c.renders
}

// Content returns the persistent content widget.
func (c *child[P]) Content() runtime.Widget {
	return c.content
}

func (c *child[P]) ChildWidgets() []runtime.Widget {
	if c.content == nil {
		return nil
	}
	return []runtime.Widget{c.content}
}

func (c *child[P]) Measure(constraints runtime.Constraints) runtime.Size {
	if c.content == nil {
		return runtime.Size{}
	}
	return c.content.Measure(constraints)
}

func (c *child[P]) Layout(bounds runtime.Rect) {
	c.Base.Layout(bounds)
	if c.content != nil {
		c.content.Layout(bounds)
	}
}

func (c *child[P]) Render(ctx runtime.RenderContext) {
	if c.content != nil {
		c.content.Render(ctx)
	}
}

// Memo re-renders its content only when props change.
type Memo[P any] struct {
	child[P]
	equal state.EqualFunc[P]
}

// NewMemo creates a memoized child comparing props with ==.
// Struct props compare field by field, so callback fields compare by identity.
func NewMemo[P comparable](content runtime.Widget, render RenderFunc[P]) *Memo[P] {
	return NewMemoFunc(content, render, state.EqualComparable[P])
}

// NewMemoFunc creates a memoized child with a custom props equality.
// A nil equal re-renders on every update.
func NewMemoFunc[P any](content runtime.Widget, render RenderFunc[P], equal state.EqualFunc[P]) *Memo[P] {
	return &Memo[P]{
		child: child[P]{content: content, render: render},
		equal: equal,
	}
}

// Update renders with props unless they equal the previous props.
// It reports whether a render happened.
func (m *Memo[P]) Update(props P) bool {
	if m.built && m.equal != nil && m.equal(m.props, props) {
		return false
	}
	m.build(props)
	return true
}

// Plain re-renders its content on every update.
type Plain[P any] struct {
	child[P]
}

// NewPlain creates an unmemoized child.
func NewPlain[P any](content runtime.Widget, render RenderFunc[P]) *Plain[P] {
	return &Plain[P]{child: child[P]{content: content, render: render}}
}

// Update always renders.
func (p *Plain[P]) Update(props P) bool {
	p.build(props)
	return true
}
