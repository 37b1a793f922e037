package widgets

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
)

// Dismiss asks the alert with the matching token to close. It travels as
// the payload of a runtime.CustomMsg so a stale timer cannot close a newer alert.
type Dismiss struct {
	Token int
}

// DismissAfter returns an effect that dismisses the alert with token after delay.
func DismissAfter(delay time.Duration, token int) runtime.Effect {
	return runtime.After(delay, runtime.CustomMsg{Value: Dismiss{Token: token}})
}

// Alert is a modal message box closed by any key, a click or a matching Dismiss.
type Alert struct {
	Base
	message   string
	token     int
	ok        *Button
	onDismiss func()
	dismissed bool
}

// NewAlert creates an alert. token identifies it for Dismiss.
func NewAlert(message string, token int, onDismiss func()) *Alert {
	a := &Alert{message: message, token: token, onDismiss: onDismiss}
	a.ok = NewButton("OK", state.NewCallback(a.dismiss))
	a.ok.SetCommands(runtime.PopOverlay{})
	return a
}

// Message returns the alert text.
func (a *Alert) Message() string {
	return a.message
}

// Token returns the dismiss token.
func (a *Alert) Token() int {
	return a.token
}

// Dismissed reports whether the alert has closed.
func (a *Alert) Dismissed() bool {
	return a.dismissed
}

func (a *Alert) dismiss() {
	if a.dismissed {
		return
	}
	a.dismissed = true
	if a.onDismiss != nil {
		a.onDismiss()
	}
}

// ChildWidgets returns the OK button.
func (a *Alert) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{a.ok}
}

// Measure sizes the box around the message and button.
func (a *Alert) Measure(constraints runtime.Constraints) runtime.Size {
	width := max(runewidth.StringWidth(a.message), 10) + 6
	return constraints.Constrain(runtime.Size{Width: width, Height: 5})
}

// Layout centers the OK button on the last inner row.
func (a *Alert) Layout(bounds runtime.Rect) {
	a.Base.Layout(bounds)
	size := a.ok.Measure(runtime.Loose(bounds.Width, 1))
	a.ok.Layout(runtime.Rect{
		X:      bounds.X + max(0, (bounds.Width-size.Width)/2),
		Y:      bounds.Y + bounds.Height - 2,
		Width:  size.Width,
		Height: 1,
	})
}

// Render draws the frame, message and button.
func (a *Alert) Render(ctx runtime.RenderContext) {
	bounds := a.bounds
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}
	theme := DefaultTheme()
	ctx.Buffer.Fill(bounds, ' ', theme.Text)
	ctx.Buffer.DrawRoundedBox(bounds, theme.Accent)
	text := truncateString(a.message, bounds.Width-4)
	x := alignedX(bounds, runewidth.StringWidth(text), AlignCenter)
	ctx.Buffer.SetString(x, bounds.Y+1, text, theme.Accent)
	a.ok.Render(ctx)
}

// HandleMessage closes on any key or a matching Dismiss; clicks inside the
// box outside the button are swallowed.
func (a *Alert) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		a.dismiss()
		return runtime.WithCommand(runtime.PopOverlay{})
	case runtime.MouseMsg:
		return runtime.Handled()
	case runtime.CustomMsg:
		d, ok := m.Value.(Dismiss)
		if !ok || d.Token != a.token || a.dismissed {
			return runtime.Unhandled()
		}
		a.dismiss()
		return runtime.WithCommand(runtime.PopOverlay{})
	}
	return runtime.Unhandled()
}

func (a *Alert) AccessibleRole() accessibility.Role        { return accessibility.RoleDialog }
func (a *Alert) AccessibleLabel() string                   { return a.message }
func (a *Alert) AccessibleDescription() string             { return "" }
func (a *Alert) AccessibleValue() *accessibility.ValueInfo { return nil }
