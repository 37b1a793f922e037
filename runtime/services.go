package runtime

import (
	"time"

	"github.com/odvcencio/furry-hooks/clipboard"
	"github.com/odvcencio/furry-hooks/state"
)

// Services exposes app-level scheduling and messaging to bound widgets.
type Services struct {
	app *App
}

// Services returns a service handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the app state scheduler.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app == nil {
		return
	}
	s.app.Invalidate()
}

// Post sends a message into the app loop.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.tryPost(msg)
}

// Spawn starts an effect using the app task context.
func (s Services) Spawn(effect Effect) {
	if s.app == nil {
		return
	}
	s.app.Spawn(effect)
}

// After schedules a delayed message.
func (s Services) After(delay time.Duration, msg Message) {
	if s.app == nil {
		return
	}
	s.app.After(delay, msg)
}

// Clipboard returns the app clipboard, or an unavailable one when unbound.
func (s Services) Clipboard() clipboard.Clipboard {
	if s.app == nil || s.app.clipboard == nil {
		return clipboard.UnavailableClipboard{}
	}
	return s.app.clipboard
}

// Execute runs cmd through the app and requests a render when it changed
// anything. Call it from the event loop only.
func (s Services) Execute(cmd Command) bool {
	if s.app == nil || cmd == nil {
		return false
	}
	if !s.app.ExecuteCommand(cmd) {
		return false
	}
	s.app.Invalidate()
	return true
}
