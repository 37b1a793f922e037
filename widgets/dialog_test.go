package widgets

import (
	"context"
	"strings"
	"testing"

	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/terminal"
)

func TestAlert_AnyKeyDismisses(t *testing.T) {
	dismissed := 0
	alert := NewAlert("Saved!", 1, func() { dismissed++ })
	result := alert.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'x'})
	if len(result.Commands) != 1 {
		t.Fatalf("expected pop command, got %v", result.Commands)
	}
	if _, ok := result.Commands[0].(runtime.PopOverlay); !ok {
		t.Fatalf("expected PopOverlay, got %T", result.Commands[0])
	}
	alert.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	if dismissed != 1 || !alert.Dismissed() {
		t.Fatalf("expected single dismissal, got %d", dismissed)
	}
}

func TestAlert_DismissTokenMustMatch(t *testing.T) {
	alert := NewAlert("Saved!", 2, nil)
	if result := alert.HandleMessage(runtime.CustomMsg{Value: Dismiss{Token: 1}}); result.Handled {
		t.Fatalf("expected stale token to be ignored")
	}
	if result := alert.HandleMessage(runtime.CustomMsg{Value: Dismiss{Token: 2}}); !result.Handled {
		t.Fatalf("expected matching token to dismiss")
	}
	if !alert.Dismissed() {
		t.Fatalf("expected alert dismissed")
	}
}

func TestAlert_OverlayOnScreen(t *testing.T) {
	screen := runtime.NewScreen(40, 10)
	screen.SetRoot(NewLabel("page"))
	alert := NewAlert("Saved!", 1, nil)
	screen.PushLayer(alert, true)
	screen.Render()

	found := false
	for y := 0; y < 10; y++ {
		if strings.Contains(rowText(screen.Buffer(), y), "Saved!") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected alert text on screen")
	}

	screen.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	if screen.LayerCount() != 1 {
		t.Fatalf("expected enter on OK to pop the alert, got %d layers", screen.LayerCount())
	}
	if !alert.Dismissed() {
		t.Fatalf("expected alert dismissed")
	}
}

func TestDismissAfter_PostsToken(t *testing.T) {
	var got runtime.Message
	DismissAfter(0, 5).Run(context.Background(), func(msg runtime.Message) bool {
		got = msg
		return true
	})
	custom, ok := got.(runtime.CustomMsg)
	if !ok || custom.Value != (Dismiss{Token: 5}) {
		t.Fatalf("expected dismiss message, got %#v", got)
	}
}
