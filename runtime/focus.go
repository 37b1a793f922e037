package runtime

// FocusScope tracks focusable widgets of one layer in tab order.
type FocusScope struct {
	items   []Focusable
	current int
}

// NewFocusScope creates an empty scope.
func NewFocusScope() *FocusScope {
	return &FocusScope{current: -1}
}

// Register appends a focusable widget to the tab order.
func (f *FocusScope) Register(w Focusable) {
	if f == nil || w == nil || !w.CanFocus() {
		return
	}
	for _, item := range f.items {
		if item == w {
			return
		}
	}
	f.items = append(f.items, w)
}

// Len returns the number of registered widgets.
func (f *FocusScope) Len() int {
	if f == nil {
		return 0
	}
	return len(f.items)
}

// Current returns the focused widget, if any.
func (f *FocusScope) Current() Focusable {
	if f == nil || f.current < 0 || f.current >= len(f.items) {
		return nil
	}
	return f.items[f.current]
}

// SetFocus focuses w if it is registered.
func (f *FocusScope) SetFocus(w Focusable) bool {
	if f == nil {
		return false
	}
	for i, item := range f.items {
		if item == w {
			f.move(i)
			return true
		}
	}
	return false
}

// FocusNext moves focus forward, wrapping at the end.
func (f *FocusScope) FocusNext() {
	if f == nil || len(f.items) == 0 {
		return
	}
	f.move((f.current + 1) % len(f.items))
}

// FocusPrev moves focus backward, wrapping at the start.
func (f *FocusScope) FocusPrev() {
	if f == nil || len(f.items) == 0 {
		return
	}
	next := f.current - 1
	if next < 0 {
		next = len(f.items) - 1
	}
	f.move(next)
}

// ClearFocus blurs the current widget.
func (f *FocusScope) ClearFocus() {
	if f == nil {
		return
	}
	if cur := f.Current(); cur != nil {
		cur.Blur()
	}
	f.current = -1
}

// Reset clears focus and forgets all registered widgets.
func (f *FocusScope) Reset() {
	if f == nil {
		return
	}
	f.ClearFocus()
	f.items = nil
}

func (f *FocusScope) move(idx int) {
	if idx == f.current {
		return
	}
	if cur := f.Current(); cur != nil {
		cur.Blur()
	}
	f.current = idx
	f.items[idx].Focus()
}

// RegisterFocusables walks root depth-first and registers focusable widgets.
func RegisterFocusables(scope *FocusScope, root Widget) {
	if scope == nil || root == nil {
		return
	}
	if f, ok := root.(Focusable); ok && f.CanFocus() {
		scope.Register(f)
	}
	if children, ok := root.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			RegisterFocusables(scope, child)
		}
	}
}
