package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
)

// SignalLabel is a label bound to a string source.
// It subscribes on Mount and releases on Unmount; updates arrive through the
// scheduler, so with a queue they land when the app flushes.
type SignalLabel struct {
	Base
	source    state.Readable[string]
	scheduler state.Scheduler
	subs      state.Subscriptions
	text      string
	style     backend.Style
	alignment Alignment
	mounted   bool
}

// NewSignalLabel creates a new signal-backed label.
func NewSignalLabel(source state.Readable[string], scheduler state.Scheduler) *SignalLabel {
	label := &SignalLabel{
		source:    source,
		scheduler: scheduler,
		style:     DefaultTheme().Text,
		alignment: AlignLeft,
	}
	label.subs.SetScheduler(scheduler)
	if source != nil {
		label.text = source.Get()
	}
	return label
}

// Text returns the current label text.
func (s *SignalLabel) Text() string {
	return s.text
}

// Current reads the source directly. Unlike Text it is fresh on an unmounted label.
func (s *SignalLabel) Current() string {
	if s.source == nil {
		return s.text
	}
	return s.source.Get()
}

// SetStyle sets the label style.
func (s *SignalLabel) SetStyle(style backend.Style) {
	s.style = style
}

// SetAlignment sets text alignment.
func (s *SignalLabel) SetAlignment(align Alignment) {
	s.alignment = align
}

// Bind switches delivery to the app scheduler unless one was given.
func (s *SignalLabel) Bind(services runtime.Services) {
	if s.scheduler != nil {
		return
	}
	s.subs.SetScheduler(services.Scheduler())
	if s.mounted {
		s.subscribe()
	}
}

// Unbind drops the app scheduler.
func (s *SignalLabel) Unbind() {
	if s.scheduler == nil {
		s.subs.SetScheduler(nil)
	}
}

// Measure returns the size needed for the label.
func (s *SignalLabel) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(s.text),
		Height: 1,
	})
}

// Render draws the label.
func (s *SignalLabel) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	text := truncateString(s.text, bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), s.alignment)
	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', s.style)
	ctx.Buffer.SetString(x, bounds.Y, text, s.style)
}

// Mount subscribes to source changes.
func (s *SignalLabel) Mount() {
	s.mounted = true
	s.subscribe()
}

// Unmount unsubscribes from source changes.
func (s *SignalLabel) Unmount() {
	s.mounted = false
	s.subs.Clear()
}

func (s *SignalLabel) subscribe() {
	s.subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.Get()
	s.subs.Observe(s.source, s.onSignal)
}

func (s *SignalLabel) onSignal() {
	if !s.mounted || s.source == nil {
		return
	}
	s.text = s.source.Get()
}

func (s *SignalLabel) AccessibleRole() accessibility.Role        { return accessibility.RoleText }
func (s *SignalLabel) AccessibleLabel() string                   { return s.text }
func (s *SignalLabel) AccessibleDescription() string             { return "" }
func (s *SignalLabel) AccessibleValue() *accessibility.ValueInfo { return nil }
