package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/ids"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/terminal"
	"github.com/odvcencio/furry-hooks/trace"
	"github.com/odvcencio/furry-hooks/widgets"
)

const helpLine = "furry-hooks   tab focus   p parent   +/- base   i d r n reducer   t trace   q quit"

// Page is the demo root. It owns the top-level state and rebuilds its
// sections whenever that state changes; each rebuild is one parent render.
type Page struct {
	widgets.Component

	cfg  Config
	log  *zap.Logger
	hlog *zap.Logger
	ids  *ids.Allocator

	parentRenders *state.Signal[int]
	base          *state.Signal[int]
	countText     *state.Computed[string]
	onSave        *state.Callback

	harness  *Harness
	derived  *Derived
	counter  *Counter
	identity *Identity

	root       *widgets.Stack
	body       []runtime.Widget
	traceView  *widgets.TraceView
	traceBox   *widgets.Section
	showTrace  bool
	alert      *widgets.Alert
	alertToken int

	renders int
	built   buildKey
	mounted bool
	clear   bool
}

// NewPage builds the page and runs its first render.
func NewPage(cfg Config) *Page {
	cfg = cfg.withDefaults()
	sections := trace.NewSections(cfg.Logger)

	initial := Snapshot{Base: 1}
	if cfg.Initial != nil {
		initial = *cfg.Initial
	}

	p := &Page{
		cfg:           cfg,
		log:           sections.For(trace.SectionPage),
		hlog:          sections.For(trace.SectionHarness),
		ids:           cfg.IDs,
		parentRenders: state.NewComparableSignal(initial.ParentRenders),
		base:          state.NewComparableSignal(initial.Base),
	}
	p.countText = state.NewComputed(func() string {
		return fmt.Sprintf("Parent count: %d", p.parentRenders.Get())
	}, p.parentRenders)
	p.onSave = state.NewCallback(p.Save)

	p.harness = newHarness(p.hlog, p.countText, state.NewCallback(p.BumpParent))
	p.derived = newDerived(sections.For(trace.SectionDerived),
		state.NewCallback(p.IncrementBase),
		state.NewCallback(p.DecrementBase),
	)
	p.counter = newCounter(sections.For(trace.SectionReducer), initial.Counter)
	p.identity = newIdentity(sections.For(trace.SectionIDs), p.ids)

	help := widgets.NewLabel(helpLine)
	help.SetStyle(widgets.DefaultTheme().Muted)
	p.body = []runtime.Widget{help, p.harness.view, p.derived.view, p.counter.view, p.identity.view}
	if cfg.Ring != nil {
		p.traceView = widgets.NewTraceView(cfg.Ring, cfg.TraceRows)
		p.traceBox = widgets.NewSection("Trace", p.traceView)
		p.showTrace = true
	}
	p.root = widgets.VStack()
	p.setChildren()

	p.build()
	return p
}

func (p *Page) setChildren() {
	children := append([]runtime.Widget(nil), p.body...)
	if p.showTrace && p.traceBox != nil {
		children = append(children, p.traceBox)
	}
	p.root.SetChildren(children...)
}

// buildKey is the top-level state a build rendered.
type buildKey struct {
	parent  int
	base    int
	counter CounterState
}

func (p *Page) key() buildKey {
	return buildKey{
		parent:  p.parentRenders.Get(),
		base:    p.base.Get(),
		counter: p.counter.State(),
	}
}

// Sync rebuilds the page when its state changed since the last build, as
// happens when state is set while the page is not mounted.
func (p *Page) Sync() {
	if p.key() != p.built {
		p.build()
	}
}

// build is one parent render.
func (p *Page) build() {
	p.renders++
	p.built = p.key()
	base := p.base.Get()
	p.log.Info("page render",
		zap.Int("parent", p.parentRenders.Get()),
		zap.Int("base", base),
	)
	p.harness.render(p.onSave)
	p.derived.render(base)
	p.counter.render(p.counter.State())
	p.relayout()
}

func (p *Page) relayout() {
	if bounds := p.Bounds(); bounds.Width > 0 && bounds.Height > 0 {
		p.Layout(bounds)
	}
}

// Mount subscribes the page to its state.
func (p *Page) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.Observe(p.parentRenders, p.build)
	p.Observe(p.base, p.build)
	p.Observe(p.counter.Store(), p.build)
	p.Sync()
}

// Unmount drops the page's subscriptions.
func (p *Page) Unmount() {
	p.mounted = false
	p.Subs.Clear()
}

// Close releases the derived parent-count text. The page is unusable after.
func (p *Page) Close() {
	p.Unmount()
	p.countText.Stop()
}

// BumpParent increments the parent render counter.
func (p *Page) BumpParent() {
	p.parentRenders.Update(func(n int) int { return n + 1 })
}

// IncrementBase adds one to the base value.
func (p *Page) IncrementBase() {
	p.base.Update(func(n int) int { return n + 1 })
}

// DecrementBase subtracts one from the base value.
func (p *Page) DecrementBase() {
	p.base.Update(func(n int) int { return n - 1 })
}

// Dispatch sends a to the reducer store.
func (p *Page) Dispatch(a Action) {
	p.counter.Dispatch(a)
}

// Save is the stable save callback: it traces and shows a confirmation.
func (p *Page) Save() {
	p.hlog.Info("save called")
	p.alertToken++
	token := p.alertToken
	p.alert = widgets.NewAlert("Saved!", token, nil)
	if !p.Services.Execute(runtime.PushOverlay{Widget: p.alert, Modal: true}) {
		return
	}
	if p.cfg.SaveDismiss > 0 {
		p.Services.Spawn(widgets.DismissAfter(p.cfg.SaveDismiss, token))
	}
}

// OnSave returns the stable save callback handed to the memoized child.
func (p *Page) OnSave() *state.Callback {
	return p.onSave
}

// SetTraceVisible shows or hides the trace console.
func (p *Page) SetTraceVisible(visible bool) {
	if p.traceBox == nil || p.showTrace == visible {
		return
	}
	p.showTrace = visible
	p.setChildren()
	p.relayout()
}

// TraceVisible reports whether the trace console is shown.
func (p *Page) TraceVisible() bool {
	return p.showTrace && p.traceBox != nil
}

// Renders returns how many parent renders have run.
func (p *Page) Renders() int {
	return p.renders
}

// ParentRenders returns the parent render counter.
func (p *Page) ParentRenders() int {
	return p.parentRenders.Get()
}

// Base returns the base value.
func (p *Page) Base() int {
	return p.base.Get()
}

// Harness returns the memoized-child section.
func (p *Page) Harness() *Harness {
	return p.harness
}

// Derived returns the derived-value section.
func (p *Page) Derived() *Derived {
	return p.derived
}

// Counter returns the reducer section.
func (p *Page) Counter() *Counter {
	return p.counter
}

// Identity returns the stable-id section.
func (p *Page) Identity() *Identity {
	return p.identity
}

// IDs returns the page's id allocator.
func (p *Page) IDs() *ids.Allocator {
	return p.ids
}

// Alert returns the most recent save confirmation, if any.
func (p *Page) Alert() *widgets.Alert {
	return p.alert
}

// Snapshot captures the state needed to rebuild an identical page.
func (p *Page) Snapshot() Snapshot {
	return Snapshot{
		ParentRenders: p.parentRenders.Get(),
		Base:          p.base.Get(),
		Counter:       p.counter.State(),
		IDPrefix:      p.ids.Prefix(),
		IDs:           p.identity.IDs(),
	}
}

// ChildWidgets returns the page body.
func (p *Page) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{p.root}
}

// Measure fills the available space.
func (p *Page) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
}

// Layout assigns the body the full page.
func (p *Page) Layout(bounds runtime.Rect) {
	p.Component.Layout(bounds)
	p.root.Layout(bounds)
	p.clear = true
}

// Render paints the body; after a layout change stale cells are cleared first.
func (p *Page) Render(ctx runtime.RenderContext) {
	if p.clear {
		ctx.Buffer.Fill(p.Bounds(), ' ', widgets.DefaultTheme().Text)
		p.clear = false
	}
	p.root.Render(ctx)
}

// HandleMessage maps page shortcuts. It only sees keys the focused widget
// left unhandled.
func (p *Page) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		return p.handleKey(m)
	case runtime.TickMsg:
		if p.TraceVisible() && p.traceView.Changed() {
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (p *Page) handleKey(msg runtime.KeyMsg) runtime.HandleResult {
	if msg.Key == terminal.KeyCtrlC {
		return runtime.WithCommand(runtime.Quit{})
	}
	if msg.Key != terminal.KeyRune {
		return runtime.Unhandled()
	}
	switch msg.Rune {
	case 'p':
		p.BumpParent()
	case '+', '=':
		p.IncrementBase()
	case '-', '_':
		p.DecrementBase()
	case 'i':
		p.Dispatch(Increment{})
	case 'd':
		p.Dispatch(Decrement{})
	case 'r':
		p.Dispatch(Reset{})
	case 'n':
		p.Dispatch(SetName{Name: setNamePayload})
	case 't':
		p.SetTraceVisible(!p.TraceVisible())
	case 'q':
		return runtime.WithCommand(runtime.Quit{})
	default:
		return runtime.Unhandled()
	}
	return runtime.Handled()
}
