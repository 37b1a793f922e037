package widgets

import (
	"testing"

	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/terminal"
)

func TestButton_ActivatesOnEnterAndSpace(t *testing.T) {
	calls := 0
	button := NewButton("Go", state.NewCallback(func() { calls++ }))

	if result := button.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter}); result.Handled {
		t.Fatalf("expected unfocused button to ignore keys")
	}
	button.Focus()
	button.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	button.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: ' '})
	if calls != 2 || button.Presses() != 2 {
		t.Fatalf("expected 2 activations, got calls=%d presses=%d", calls, button.Presses())
	}
}

func TestButton_ActivatesOnMouseRelease(t *testing.T) {
	calls := 0
	button := NewButton("Go", state.NewCallback(func() { calls++ }))
	button.Layout(runtime.Rect{X: 2, Y: 1, Width: 6, Height: 1})

	button.HandleMessage(runtime.MouseMsg{X: 3, Y: 1, Action: terminal.MousePress})
	if calls != 0 {
		t.Fatalf("expected press alone not to activate")
	}
	button.HandleMessage(runtime.MouseMsg{X: 3, Y: 1, Action: terminal.MouseRelease})
	if calls != 1 {
		t.Fatalf("expected release to activate, got %d", calls)
	}
	if result := button.HandleMessage(runtime.MouseMsg{X: 0, Y: 0, Action: terminal.MouseRelease}); result.Handled {
		t.Fatalf("expected click outside bounds to be unhandled")
	}
}

func TestButton_EmitsCommands(t *testing.T) {
	button := NewButton("OK", nil)
	button.SetCommands(runtime.PopOverlay{})
	button.Focus()
	result := button.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	if len(result.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(result.Commands))
	}
	if _, ok := result.Commands[0].(runtime.PopOverlay); !ok {
		t.Fatalf("expected PopOverlay, got %T", result.Commands[0])
	}
}

func TestButton_NilCallbackIsSafe(t *testing.T) {
	button := NewButton("noop", nil)
	button.Press()
	if button.Presses() != 1 {
		t.Fatalf("expected press counted, got %d", button.Presses())
	}
}
