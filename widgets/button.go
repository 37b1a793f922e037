package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Button invokes a callback on Enter, Space or a mouse release over it.
type Button struct {
	FocusableBase
	label      string
	onClick    *state.Callback
	style      backend.Style
	focusStyle backend.Style
	presses    int
	commands   []runtime.Command
}

// NewButton creates a button. onClick may be nil.
func NewButton(label string, onClick *state.Callback) *Button {
	theme := DefaultTheme()
	return &Button{
		label:      label,
		onClick:    onClick,
		style:      theme.Button,
		focusStyle: theme.ButtonFocused,
	}
}

// Label returns the button caption.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the caption.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// OnClick returns the current callback.
func (b *Button) OnClick() *state.Callback {
	return b.onClick
}

// SetOnClick replaces the callback.
func (b *Button) SetOnClick(cb *state.Callback) {
	b.onClick = cb
}

// Presses returns how many times the button was activated.
func (b *Button) Presses() int {
	return b.presses
}

// SetCommands sets commands emitted with every activation.
func (b *Button) SetCommands(cmds ...runtime.Command) {
	b.commands = cmds
}

// Press activates the button as if clicked.
func (b *Button) Press() {
	b.presses++
	b.onClick.Call()
}

func (b *Button) activate() runtime.HandleResult {
	b.Press()
	if len(b.commands) > 0 {
		return runtime.WithCommand(b.commands...)
	}
	return runtime.Handled()
}

// Measure returns caption width plus padding.
func (b *Button) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(b.label) + 4,
		Height: 1,
	})
}

// Render draws "[ label ]".
func (b *Button) Render(ctx runtime.RenderContext) {
	bounds := b.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	style := b.style
	if b.focused {
		style = b.focusStyle
	}
	text := truncateString("[ "+b.label+" ]", bounds.Width)
	writePadded(ctx.Buffer, bounds.X, bounds.Y, runewidth.StringWidth(text), text, style)
}

// HandleMessage activates on key or click.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		if !b.focused {
			return runtime.Unhandled()
		}
		if m.Key == terminal.KeyEnter || (m.Key == terminal.KeyRune && m.Rune == ' ') {
			return b.activate()
		}
	case runtime.MouseMsg:
		if !b.bounds.Contains(m.X, m.Y) {
			return runtime.Unhandled()
		}
		if m.Action == terminal.MouseRelease {
			return b.activate()
		}
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (b *Button) AccessibleRole() accessibility.Role        { return accessibility.RoleButton }
func (b *Button) AccessibleLabel() string                   { return b.label }
func (b *Button) AccessibleDescription() string             { return "" }
func (b *Button) AccessibleValue() *accessibility.ValueInfo { return nil }
