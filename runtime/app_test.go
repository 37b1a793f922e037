package runtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/odvcencio/furry-hooks/backend/sim"
	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/terminal"
)

type quitOnQWidget struct {
	focusTestWidget
}

func (w *quitOnQWidget) HandleMessage(msg Message) HandleResult {
	if key, ok := msg.(KeyMsg); ok && key.Key == terminal.KeyRune && key.Rune == 'q' {
		return WithCommand(Quit{})
	}
	return w.focusTestWidget.HandleMessage(msg)
}

func startApp(t *testing.T, cfg AppConfig) (*App, chan error, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	app := NewApp(cfg)
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run(ctx)
	}()
	t.Cleanup(cancel)
	return app, errCh, cancel
}

func waitDone(t *testing.T, errCh chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
		return nil
	}
}

func TestApp_RunRequiresBackend(t *testing.T) {
	app := NewApp(AppConfig{})
	if err := app.Run(context.Background()); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("expected ErrNoBackend, got %v", err)
	}
}

func TestApp_DoRendersToBackend(t *testing.T) {
	be := sim.New(12, 3)
	label := &focusTestWidget{label: "hello"}
	app, errCh, cancel := startApp(t, AppConfig{Backend: be, Root: label})

	ctx := context.Background()
	if err := app.Do(ctx, func(*App) {}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !be.ContainsText("hello") {
		t.Fatalf("expected first frame to contain label, got %q", be.Capture())
	}

	if err := app.Do(ctx, func(*App) { label.label = "bye  " }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !be.ContainsText("bye") || be.ContainsText("hello") {
		t.Fatalf("expected updated frame, got %q", be.Capture())
	}

	cancel()
	if err := waitDone(t, errCh); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestApp_QuitCommandStopsLoop(t *testing.T) {
	be := sim.New(10, 2)
	root := &quitOnQWidget{focusTestWidget{label: "quit"}}
	_, errCh, _ := startApp(t, AppConfig{Backend: be, Root: root})

	be.InjectRune('q')
	if err := waitDone(t, errCh); err != nil {
		t.Fatalf("expected clean exit on quit, got %v", err)
	}
}

func TestApp_StateSchedulerFlushesBeforeRender(t *testing.T) {
	be := sim.New(10, 2)
	label := &focusTestWidget{label: "0"}
	count := state.NewSignal(0)

	app, _, _ := startApp(t, AppConfig{
		Backend: be,
		Root:    label,
		OnStart: func(app *App) {
			count.SubscribeWithScheduler(app.StateScheduler(), func() {
				label.label = string(rune('0' + count.Get()))
			})
		},
	})

	if err := app.Do(context.Background(), func(*App) { count.Set(7) }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !be.ContainsText("7") {
		t.Fatalf("expected scheduled update to render, got %q", be.Capture())
	}
}

func TestApp_DefaultClipboard(t *testing.T) {
	app := NewApp(AppConfig{})
	cb := app.Services().Clipboard()
	if !cb.Available() {
		t.Fatalf("expected in-memory clipboard by default")
	}
	if err := cb.Write("copied"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, _ := cb.Read(); got != "copied" {
		t.Fatalf("expected clipboard round trip, got %q", got)
	}

	var zero Services
	if zero.Clipboard().Available() {
		t.Fatalf("expected unbound services to report no clipboard")
	}
}
