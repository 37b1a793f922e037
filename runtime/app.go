package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/clipboard"
	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/terminal"
)

// ErrNoBackend is returned by Run when the app has no backend.
var ErrNoBackend = errors.New("backend is required")

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands emitted by widgets.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
	Clipboard      clipboard.Clipboard
	// OnStart runs on the event loop once the screen exists.
	OnStart func(app *App)
}

// App runs a widget tree against a terminal backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	clipboard      clipboard.Clipboard
	onStart        func(app *App)
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingMu      sync.Mutex
	pendingEffects []Effect

	running bool
	dirty   bool
	frames  int
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	cb := cfg.Clipboard
	if cb == nil {
		cb = &clipboard.MemoryClipboard{}
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		clipboard:      cb,
		onStart:        cfg.OnStart,
	}
	app.queueScheduler = NewQueueScheduler(queue, app.tryPost)
	app.invalidator = NewInvalidator(app.tryPost)
	return app
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// Frames returns how many frames have been flushed to the backend.
func (a *App) Frames() int {
	return a.frames
}

// StateScheduler returns a scheduler that wakes the app to flush.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil || a.queueScheduler == nil {
		return nil
	}
	return a.queueScheduler
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a == nil || a.invalidator == nil {
		return
	}
	a.invalidator.Invalidate()
}

// Spawn starts an effect using the app task context.
// If Run has not started, the effect is queued until start.
func (a *App) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	if a.taskCtx == nil {
		a.pendingMu.Lock()
		a.pendingEffects = append(a.pendingEffects, effect)
		a.pendingMu.Unlock()
		return
	}
	a.runEffect(effect)
}

// After schedules a delayed message using the app task context.
func (a *App) After(delay time.Duration, msg Message) {
	a.Spawn(After(delay, msg))
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// Post sends a message to the event loop.
func (a *App) Post(msg Message) {
	_ = a.tryPost(msg)
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	return a.tryPost(msg)
}

// Dispatch posts msg, blocking until there is room or ctx is done.
func (a *App) Dispatch(ctx context.Context, msg Message) error {
	if a == nil || a.messages == nil {
		return ErrNoBackend
	}
	select {
	case a.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn on the event loop and waits until it has finished and the
// resulting state has been flushed and rendered. Messages posted before Do
// are handled first.
func (a *App) Do(ctx context.Context, fn func(app *App)) error {
	call := callMsg{fn: fn, done: make(chan struct{})}
	if err := a.Dispatch(ctx, call); err != nil {
		return err
	}
	select {
	case <-call.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type callMsg struct {
	fn   func(app *App)
	done chan struct{}
}

func (callMsg) isMessage() {}

func (a *App) tryPost(msg Message) bool {
	if a == nil || a.messages == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	a.taskCtx = taskCtx
	a.taskCancel = taskCancel
	defer func() {
		taskCancel()
		a.taskCtx = nil
		a.taskCancel = nil
	}()
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h)
	a.screen.SetServices(a.Services())
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}
	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.running = true
	a.dirty = true
	if a.onStart != nil {
		a.onStart(a)
	}
	a.startPendingEffects()

	go a.pollEvents(taskCtx)

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running {
		if a.dirty {
			a.render()
			a.dirty = false
		}

		var msg Message
		select {
		case <-ctx.Done():
			a.running = false
			a.cancelTasks()
			continue
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}

		if call, ok := msg.(callMsg); ok {
			if call.fn != nil {
				call.fn(a)
			}
			a.flushQueueIfNeeded(QueueFlushMsg{})
			a.render()
			a.dirty = false
			close(call.done)
			continue
		}
		if a.update(a, msg) {
			a.dirty = true
		}
		if !a.running {
			continue
		}
		if a.flushQueueIfNeeded(msg) {
			a.dirty = true
		}
		if _, ok := msg.(InvalidateMsg); ok {
			a.invalidator.resetPending()
		}
	}

	return ctx.Err()
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}

	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return app.dispatchMessage(msg)
	}
}

func (a *App) dispatchMessage(msg Message) bool {
	if a == nil || a.screen == nil {
		return false
	}
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running = false
		a.cancelTasks()
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	case SendMsg:
		if c.Message != nil {
			a.Post(c.Message)
		}
		return false
	case Effect:
		a.runEffect(c)
		return false
	case FocusNext, FocusPrev, PushOverlay, PopOverlay:
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

// ExecuteCommand runs a command through the app handler.
func (a *App) ExecuteCommand(cmd Command) bool {
	if a == nil {
		return false
	}
	if a.screen != nil {
		a.screen.handleCommand(cmd)
	}
	return a.handleCommand(cmd)
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.postInput(ctx, KeyMsg{
				Key:   e.Key,
				Rune:  e.Rune,
				Alt:   e.Alt,
				Ctrl:  e.Ctrl,
				Shift: e.Shift,
			})
		case terminal.ResizeEvent:
			a.postInput(ctx, ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.MouseEvent:
			a.postInput(ctx, MouseMsg{
				X:      e.X,
				Y:      e.Y,
				Button: e.Button,
				Action: e.Action,
				Alt:    e.Alt,
				Ctrl:   e.Ctrl,
				Shift:  e.Shift,
			})
		case terminal.PasteEvent:
			a.postInput(ctx, PasteMsg{Text: e.Text})
		}
	}
}

// postInput blocks so input is never dropped; it gives up when the app stops.
func (a *App) postInput(ctx context.Context, msg Message) {
	select {
	case a.messages <- msg:
	case <-ctx.Done():
	}
}

func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Render()
	buf := a.screen.Buffer()
	if !buf.IsDirty() {
		return
	}
	w, _ := buf.Size()
	cells := buf.Cells()
	rowWriter, hasRowWriter := a.backend.(RowWriter)
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		rowStart := y * w
		if hasRowWriter {
			rowWriter.SetRow(y, startX, cells[rowStart+startX:rowStart+endX])
			return
		}
		for x := startX; x < endX; x++ {
			cell := cells[rowStart+x]
			a.backend.SetContent(x, y, cell.Rune, nil, cell.Style)
		}
	})
	buf.ClearDirty()
	a.backend.Show()
	a.frames++
}

// RowWriter is the backend row fast path.
type RowWriter = backend.RowWriter

func (a *App) taskContext() context.Context {
	if a != nil && a.taskCtx != nil {
		return a.taskCtx
	}
	return context.Background()
}

func (a *App) cancelTasks() {
	if a == nil || a.taskCancel == nil {
		return
	}
	a.taskCancel()
}

func (a *App) runEffect(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	ctx := a.taskContext()
	go effect.Run(ctx, a.tryPost)
}

func (a *App) startPendingEffects() {
	if a == nil {
		return
	}
	a.pendingMu.Lock()
	effects := a.pendingEffects
	a.pendingEffects = nil
	a.pendingMu.Unlock()
	for _, effect := range effects {
		a.runEffect(effect)
	}
}

func (a *App) flushQueueIfNeeded(msg Message) bool {
	if a == nil || a.stateQueue == nil {
		return false
	}
	if !shouldFlushQueue(a.flushPolicy, msg) {
		return false
	}
	if a.queueScheduler != nil {
		a.queueScheduler.resetPending()
	}
	return a.stateQueue.Flush() > 0
}
