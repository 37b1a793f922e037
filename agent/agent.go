// Package agent drives a running app headlessly.
//
// It pairs a runtime.App with a simulation backend and exposes semantic
// operations over the widget tree (find by accessible label, focus, activate,
// type) instead of raw terminal input. Every tree access runs on the app's
// event loop through App.Do, so an agent is safe to use from any goroutine.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend/sim"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Common errors returned by Agent methods.
var (
	ErrWidgetNotFound = errors.New("widget not found")
	ErrNotFocusable   = errors.New("widget is not focusable")
	ErrNotInteractive = errors.New("widget is not interactive")
	ErrTimeout        = errors.New("operation timed out")
	ErrNoApp          = errors.New("no app configured")
)

const (
	defaultTimeout = 2 * time.Second
	pollInterval   = 10 * time.Millisecond
)

// Agent drives an app through a simulation backend.
type Agent struct {
	app     *runtime.App
	sim     *sim.Backend
	timeout time.Duration
}

// Config configures an Agent.
type Config struct {
	// App is the application to control. It must use Sim as its backend.
	App *runtime.App

	// Sim is the simulation backend. If nil, one is created; use Backend()
	// to hand it to the app.
	Sim *sim.Backend

	// Width and Height size a created backend (default 80x24).
	Width, Height int

	// Timeout bounds each operation. Default is 2s.
	Timeout time.Duration
}

// New creates a new Agent with the given configuration.
func New(cfg Config) *Agent {
	s := cfg.Sim
	if s == nil {
		s = sim.New(cfg.Width, cfg.Height)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Agent{app: cfg.App, sim: s, timeout: timeout}
}

// Backend returns the underlying simulation backend.
func (a *Agent) Backend() *sim.Backend {
	if a == nil {
		return nil
	}
	return a.sim
}

// do runs fn on the event loop and waits for the following render.
func (a *Agent) do(ctx context.Context, fn func(app *runtime.App)) error {
	if a == nil || a.app == nil {
		return ErrNoApp
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	if err := a.app.Do(ctx, fn); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return err
	}
	return nil
}

// send posts msgs in order and waits until they were handled and rendered.
func (a *Agent) send(ctx context.Context, msgs ...runtime.Message) error {
	if a == nil || a.app == nil {
		return ErrNoApp
	}
	dctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	for _, msg := range msgs {
		if err := a.app.Dispatch(dctx, msg); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %v", ErrTimeout, err)
			}
			return err
		}
	}
	return a.do(ctx, nil)
}

// Snapshot returns a structured representation of the current UI state.
func (a *Agent) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := a.do(ctx, func(app *runtime.App) {
		screen := app.Screen()
		if screen == nil {
			return
		}
		snap.Width, snap.Height = screen.Size()
		snap.LayerCount = screen.LayerCount()
		for i := 0; i < screen.LayerCount(); i++ {
			if layer := screen.Layer(i); layer != nil && layer.Root != nil {
				walkWidgets(layer.Root, i, &snap.Widgets)
			}
		}
		if scope := screen.FocusScope(); scope != nil {
			if focused := scope.Current(); focused != nil {
				snap.FocusedID = widgetID(focused)
			}
		}
	})
	if err != nil {
		return snap, err
	}
	snap.Timestamp = time.Now()
	snap.Text = a.sim.Capture()
	snap.Fingerprint = a.sim.Fingerprint()
	if snap.FocusedID != "" {
		snap.Focused = findIn(snap.Widgets, func(w *WidgetInfo) bool { return w.ID == snap.FocusedID })
	}
	return snap, nil
}

// SnapshotJSON returns the snapshot as indented JSON.
func (a *Agent) SnapshotJSON(ctx context.Context) ([]byte, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snap, "", "  ")
}

// walkWidgets collects widget info, children before their parent.
func walkWidgets(w runtime.Widget, layer int, out *[]WidgetInfo) {
	if w == nil {
		return
	}
	info := extractWidgetInfo(w, layer)
	if cp, ok := w.(runtime.ChildProvider); ok {
		for _, child := range cp.ChildWidgets() {
			walkWidgets(child, layer, &info.Children)
		}
	}
	*out = append(*out, info)
}

func extractWidgetInfo(w runtime.Widget, layer int) WidgetInfo {
	info := WidgetInfo{ID: widgetID(w), Layer: layer}
	if bp, ok := w.(runtime.BoundsProvider); ok {
		info.Bounds = bp.Bounds()
	}
	if acc, ok := w.(accessibility.Accessible); ok {
		info.Role = acc.AccessibleRole()
		info.Label = acc.AccessibleLabel()
		info.Description = acc.AccessibleDescription()
		if val := acc.AccessibleValue(); val != nil {
			info.Value = val.Text
		}
	}
	if l, ok := w.(accessibility.Labelled); ok {
		info.LabelledBy = l.LabelledBy()
	}
	if f, ok := w.(runtime.Focusable); ok {
		info.Focusable = f.CanFocus()
		info.Focused = f.IsFocused()
	}
	info.Actions = actionsForRole(info.Role)
	return info
}

func widgetID(w runtime.Widget) string {
	if w == nil {
		return ""
	}
	return fmt.Sprintf("%p", w)
}

func actionsForRole(role accessibility.Role) []string {
	switch role {
	case accessibility.RoleButton:
		return []string{"activate", "focus"}
	case accessibility.RoleTextbox:
		return []string{"type", "focus"}
	case accessibility.RoleNone:
		return nil
	default:
		return []string{"read"}
	}
}

func findIn(widgets []WidgetInfo, match func(*WidgetInfo) bool) *WidgetInfo {
	for i := range widgets {
		w := &widgets[i]
		if match(w) {
			return w
		}
		if found := findIn(w.Children, match); found != nil {
			return found
		}
	}
	return nil
}

// labelMatcher matches an exact (case-insensitive) label first and falls
// back to substring matches. roles, when given, restrict the candidates.
type labelMatcher struct {
	label string
	roles []accessibility.Role
}

func newLabelMatcher(label string, roles []accessibility.Role) labelMatcher {
	return labelMatcher{label: strings.ToLower(strings.TrimSpace(label)), roles: roles}
}

func (m labelMatcher) role(r accessibility.Role) bool {
	if len(m.roles) == 0 {
		return true
	}
	for _, want := range m.roles {
		if r == want {
			return true
		}
	}
	return false
}

func (m labelMatcher) match(role accessibility.Role, label string, exact bool) bool {
	if !m.role(role) {
		return false
	}
	label = strings.ToLower(label)
	if exact {
		return label == m.label
	}
	return strings.Contains(label, m.label)
}

// FindByLabel finds a widget by accessible label, searching the top layer
// first. roles optionally restrict the match.
func (a *Agent) FindByLabel(ctx context.Context, label string, roles ...accessibility.Role) (*WidgetInfo, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	m := newLabelMatcher(label, roles)
	for _, exact := range []bool{true, false} {
		for layer := snap.LayerCount - 1; layer >= 0; layer-- {
			found := findIn(snap.Widgets, func(w *WidgetInfo) bool {
				return w.Layer == layer && m.match(w.Role, w.Label, exact)
			})
			if found != nil {
				return found, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrWidgetNotFound, label)
}

// FindByRole finds all widgets with the given role.
func (a *Agent) FindByRole(ctx context.Context, role accessibility.Role) ([]WidgetInfo, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var results []WidgetInfo
	findByRoleIn(snap.Widgets, role, &results)
	return results, nil
}

func findByRoleIn(widgets []WidgetInfo, role accessibility.Role, out *[]WidgetInfo) {
	for _, w := range widgets {
		if w.Role == role {
			*out = append(*out, w)
		}
		findByRoleIn(w.Children, role, out)
	}
}

// locate returns the live widget matching m and its layer, top layer first.
// It must run on the event loop.
func locate(screen *runtime.Screen, m labelMatcher) (runtime.Widget, int) {
	if screen == nil {
		return nil, -1
	}
	for _, exact := range []bool{true, false} {
		for layer := screen.LayerCount() - 1; layer >= 0; layer-- {
			if w := locateIn(screen.Layer(layer).Root, m, exact); w != nil {
				return w, layer
			}
		}
	}
	return nil, -1
}

func locateIn(w runtime.Widget, m labelMatcher, exact bool) runtime.Widget {
	if w == nil {
		return nil
	}
	if acc, ok := w.(accessibility.Accessible); ok && m.match(acc.AccessibleRole(), acc.AccessibleLabel(), exact) {
		return w
	}
	if cp, ok := w.(runtime.ChildProvider); ok {
		for _, child := range cp.ChildWidgets() {
			if found := locateIn(child, m, exact); found != nil {
				return found
			}
		}
	}
	return nil
}

// focus moves focus to the widget matching m within its layer.
func focus(screen *runtime.Screen, m labelMatcher) error {
	w, layer := locate(screen, m)
	if w == nil {
		return fmt.Errorf("%w: %q", ErrWidgetNotFound, m.label)
	}
	if layer != screen.LayerCount()-1 {
		return fmt.Errorf("%w: %q is covered by an overlay", ErrNotInteractive, m.label)
	}
	f, ok := w.(runtime.Focusable)
	if !ok || !f.CanFocus() || !screen.Layer(layer).FocusScope.SetFocus(f) {
		return fmt.Errorf("%w: %q", ErrNotFocusable, m.label)
	}
	return nil
}

// Focus moves focus to the widget with label.
func (a *Agent) Focus(ctx context.Context, label string) error {
	var err error
	if doErr := a.do(ctx, func(app *runtime.App) {
		err = focus(app.Screen(), newLabelMatcher(label, nil))
	}); doErr != nil {
		return doErr
	}
	return err
}

// Activate focuses the button with label and presses Enter.
func (a *Agent) Activate(ctx context.Context, label string) error {
	var err error
	if doErr := a.do(ctx, func(app *runtime.App) {
		err = focus(app.Screen(), newLabelMatcher(label, []accessibility.Role{accessibility.RoleButton}))
	}); doErr != nil {
		return doErr
	}
	if err != nil {
		return err
	}
	return a.send(ctx, runtime.KeyMsg{Key: terminal.KeyEnter})
}

// Click sends a left click to the center of the widget with label.
func (a *Agent) Click(ctx context.Context, label string) error {
	info, err := a.FindByLabel(ctx, label)
	if err != nil {
		return err
	}
	b := info.Bounds
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %q has no area", ErrNotInteractive, label)
	}
	x, y := b.X+b.Width/2, b.Y+b.Height/2
	return a.send(ctx,
		runtime.MouseMsg{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress},
		runtime.MouseMsg{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MouseRelease},
	)
}

// Type focuses the textbox with label and types text into it.
func (a *Agent) Type(ctx context.Context, label, text string) error {
	var err error
	if doErr := a.do(ctx, func(app *runtime.App) {
		err = focus(app.Screen(), newLabelMatcher(label, []accessibility.Role{accessibility.RoleTextbox}))
	}); doErr != nil {
		return doErr
	}
	if err != nil {
		return err
	}
	msgs := make([]runtime.Message, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, runtime.KeyMsg{Key: terminal.KeyRune, Rune: r})
	}
	return a.send(ctx, msgs...)
}

// Press sends a special key to the focused widget.
func (a *Agent) Press(ctx context.Context, key terminal.Key) error {
	return a.send(ctx, runtime.KeyMsg{Key: key})
}

// PressRune sends a printable key.
func (a *Agent) PressRune(ctx context.Context, r rune) error {
	return a.send(ctx, runtime.KeyMsg{Key: terminal.KeyRune, Rune: r})
}

// Value returns the value of the textbox with label.
func (a *Agent) Value(ctx context.Context, label string) (string, error) {
	w, err := a.FindByLabel(ctx, label, accessibility.RoleTextbox)
	if err != nil {
		return "", err
	}
	return w.Value, nil
}

// WaitForText polls the screen until text appears.
func (a *Agent) WaitForText(ctx context.Context, text string) error {
	return a.waitFor(ctx, func() bool { return a.ContainsText(text) }, text)
}

// WaitForWidget polls until a widget with label exists.
func (a *Agent) WaitForWidget(ctx context.Context, label string) error {
	return a.waitFor(ctx, func() bool {
		_, err := a.FindByLabel(ctx, label)
		return err == nil
	}, label)
}

func (a *Agent) waitFor(ctx context.Context, ok func() bool, what string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if ok() {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: waiting for %q", ErrTimeout, what)
		case <-ticker.C:
		}
	}
}

// ContainsText checks if the given text appears on screen.
func (a *Agent) ContainsText(text string) bool {
	if a == nil || a.sim == nil {
		return false
	}
	return a.sim.ContainsText(text)
}

// FindText returns the position of text on screen, or (-1, -1) if not found.
func (a *Agent) FindText(text string) (x, y int) {
	if a == nil || a.sim == nil {
		return -1, -1
	}
	return a.sim.FindText(text)
}

// CaptureText returns the raw text content of the screen.
func (a *Agent) CaptureText() string {
	if a == nil || a.sim == nil {
		return ""
	}
	return a.sim.Capture()
}

// Fingerprint hashes the last frame.
func (a *Agent) Fingerprint() uint64 {
	if a == nil || a.sim == nil {
		return 0
	}
	return a.sim.Fingerprint()
}
