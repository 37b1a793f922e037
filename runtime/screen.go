package runtime

import (
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Layer represents a layer in the overlay stack.
// Each layer has its own widget tree and focus scope.
type Layer struct {
	Root       Widget
	FocusScope *FocusScope
	Modal      bool // If true, blocks input to layers below
}

// Screen manages the widget tree, overlay stack, focus and painting.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	services      Services
	// stale is set when cells may hold paint from a removed layer.
	stale bool
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
	}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays out every layer.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	for _, layer := range s.layers {
		s.layoutLayer(layer)
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot replaces the root widget of the base layer.
func (s *Screen) SetRoot(root Widget) {
	var oldRoot Widget
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{FocusScope: NewFocusScope()})
	} else {
		oldRoot = s.layers[0].Root
	}
	if oldRoot != nil {
		UnmountTree(oldRoot)
		UnbindTree(oldRoot)
	}
	base := s.layers[0]
	base.Root = root
	base.FocusScope.Reset()
	if root != nil {
		BindTree(root, s.services)
		s.layoutLayer(base)
		MountTree(root)
		RegisterFocusables(base.FocusScope, root)
	}
	s.buffer.MarkAllDirty()
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a new layer on top of the stack.
// If modal is true, input won't pass to layers below.
func (s *Screen) PushLayer(root Widget, modal bool) {
	layer := &Layer{
		Root:       root,
		FocusScope: NewFocusScope(),
		Modal:      modal,
	}
	s.layers = append(s.layers, layer)
	if root != nil {
		BindTree(root, s.services)
		s.layoutLayer(layer)
		MountTree(root)
		RegisterFocusables(layer.FocusScope, root)
		layer.FocusScope.FocusNext()
	}
}

// PopLayer removes the top layer from the stack.
// Returns false if only the base layer remains.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	top := s.layers[len(s.layers)-1]
	top.FocusScope.ClearFocus()
	if top.Root != nil {
		UnmountTree(top.Root)
		UnbindTree(top.Root)
	}
	s.layers = s.layers[:len(s.layers)-1]
	s.stale = true
	return true
}

// TopLayer returns the topmost layer.
func (s *Screen) TopLayer() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// Layer returns layer i counting up from the base layer, or nil.
func (s *Screen) Layer(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// FocusScope returns the focus scope of the top layer.
func (s *Screen) FocusScope() *FocusScope {
	if top := s.TopLayer(); top != nil {
		return top.FocusScope
	}
	return nil
}

// Relayout recomputes bounds for every layer, for trees whose shape changed.
func (s *Screen) Relayout() {
	for _, layer := range s.layers {
		s.layoutLayer(layer)
	}
}

func (s *Screen) layoutLayer(layer *Layer) {
	if layer == nil || layer.Root == nil {
		return
	}
	bounds := Rect{0, 0, s.width, s.height}
	if layer != s.layers[0] {
		size := layer.Root.Measure(Loose(s.width, s.height))
		bounds = Rect{
			X:      (s.width - size.Width) / 2,
			Y:      (s.height - size.Height) / 2,
			Width:  size.Width,
			Height: size.Height,
		}
	}
	layer.Root.Layout(bounds)
}

// Render paints all layers, bottom to top, into the buffer.
func (s *Screen) Render() {
	ctx := RenderContext{
		Buffer: s.buffer,
		Bounds: Rect{0, 0, s.width, s.height},
	}
	if s.stale {
		ctx.Clear(backend.DefaultStyle())
		s.stale = false
	}
	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx.Focused = i == len(s.layers)-1
		if bp, ok := layer.Root.(BoundsProvider); ok {
			ctx.Bounds = bp.Bounds()
		}
		layer.Root.Render(ctx)
	}
}

// HandleMessage dispatches a message to the appropriate layer.
//
// Mouse messages go to the deepest widget under the pointer. Key messages go
// to the focused widget first, then to the layer root, then bubble to lower
// layers unless a modal layer stops them. Unhandled Tab and Backtab move focus.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if mouse, ok := msg.(MouseMsg); ok {
		return s.handleMouse(mouse)
	}

	if _, ok := msg.(KeyMsg); ok {
		if scope := s.FocusScope(); scope != nil {
			if focused := scope.Current(); focused != nil {
				if result := s.deliver(focused, msg); result.Handled {
					return result
				}
			}
		}
	}

	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}
		if result := s.deliver(layer.Root, msg); result.Handled {
			return result
		}
		if layer.Modal {
			break
		}
	}

	if key, ok := msg.(KeyMsg); ok {
		switch key.Key {
		case terminal.KeyTab:
			s.handleCommand(FocusNext{})
			return Handled()
		case terminal.KeyBacktab:
			s.handleCommand(FocusPrev{})
			return Handled()
		}
	}
	return Unhandled()
}

func (s *Screen) handleMouse(msg MouseMsg) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if target := widgetAt(layer.Root, msg.X, msg.Y); target != nil {
			if msg.Action == terminal.MousePress {
				if f, ok := target.(Focusable); ok && f.CanFocus() {
					layer.FocusScope.SetFocus(f)
				}
			}
			if result := s.deliver(target, msg); result.Handled {
				return result
			}
		}
		if layer.Modal {
			break
		}
	}
	return Unhandled()
}

func (s *Screen) deliver(w Widget, msg Message) HandleResult {
	result := w.HandleMessage(msg)
	for _, cmd := range result.Commands {
		s.handleCommand(cmd)
	}
	return result
}

// widgetAt returns the deepest widget whose bounds contain (x, y).
func widgetAt(w Widget, x, y int) Widget {
	if w == nil {
		return nil
	}
	if children, ok := w.(ChildProvider); ok {
		kids := children.ChildWidgets()
		for i := len(kids) - 1; i >= 0; i-- {
			if hit := widgetAt(kids[i], x, y); hit != nil {
				return hit
			}
		}
	}
	if bp, ok := w.(BoundsProvider); ok && bp.Bounds().Contains(x, y) {
		return w
	}
	return nil
}

// handleCommand processes focus and overlay commands.
// Other commands bubble up to App.
func (s *Screen) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case FocusNext:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusNext()
		}
	case FocusPrev:
		if scope := s.FocusScope(); scope != nil {
			scope.FocusPrev()
		}
	case PopOverlay:
		s.PopLayer()
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
	}
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Focused bool // Is the containing layer focused?
	Bounds  Rect // Widget's allocated bounds
}

// Sub creates a new context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Buffer:  ctx.Buffer,
		Focused: ctx.Focused,
		Bounds:  bounds,
	}
}

// Clear fills the context bounds with spaces using the provided style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}
