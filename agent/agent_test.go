package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend/sim"
	"github.com/odvcencio/furry-hooks/demo"
	"github.com/odvcencio/furry-hooks/runtime"
)

func startDemo(t *testing.T, cfg demo.Config) (*Agent, *demo.Page, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	cfg.Logger = zap.New(core)
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "a"
	}
	page := demo.NewPage(cfg)
	backend := sim.New(100, 40)
	app := runtime.NewApp(runtime.AppConfig{Backend: backend, Root: page})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
		page.Close()
	})
	return New(Config{App: app, Sim: backend}), page, logs
}

func TestAgent_MemoChildSurvivesParentRenders(t *testing.T) {
	agt, page, logs := startDemo(t, demo.Config{SaveDismiss: -1})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, agt.Activate(ctx, "Re-render parent (+1)"))
	}
	require.True(t, agt.ContainsText("Parent count: 5"))

	var memo, plain int
	require.NoError(t, agt.do(ctx, func(*runtime.App) {
		memo = page.Harness().MemoRenders()
		plain = page.Harness().PlainRenders()
	}))
	require.Equal(t, 1, memo)
	require.Equal(t, 6, plain)
	require.Equal(t, 1, logs.FilterMessage("memo child render").Len())
}

func TestAgent_SaveShowsOverlay(t *testing.T) {
	agt, _, logs := startDemo(t, demo.Config{SaveDismiss: -1})
	ctx := context.Background()

	require.NoError(t, agt.Activate(ctx, "Save (memo child)"))
	require.True(t, agt.ContainsText("Saved!"))
	require.Equal(t, 1, logs.FilterMessage("save called").Len())

	snap, err := agt.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, snap.LayerCount)
	require.NotNil(t, snap.Focused)
	require.Equal(t, "OK", snap.Focused.Label)

	err = agt.Activate(ctx, "Re-render parent (+1)")
	require.ErrorIs(t, err, ErrNotInteractive)

	require.NoError(t, agt.Activate(ctx, "OK"))
	snap, err = agt.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, snap.LayerCount)
	require.False(t, agt.ContainsText("Saved!"))
}

func TestAgent_SaveOverlayDismissesItself(t *testing.T) {
	agt, _, _ := startDemo(t, demo.Config{SaveDismiss: 20 * time.Millisecond})
	ctx := context.Background()

	require.NoError(t, agt.Activate(ctx, "Save (memo child)"))
	require.NoError(t, agt.waitFor(ctx, func() bool {
		return !agt.ContainsText("Saved!")
	}, "overlay to close"))
}

func TestAgent_TypeIntoLabelledInput(t *testing.T) {
	agt, _, _ := startDemo(t, demo.Config{})
	ctx := context.Background()

	require.NoError(t, agt.Type(ctx, "Email (1)", "a@b.c"))

	value, err := agt.Value(ctx, "Email (1)")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", value)

	input, err := agt.FindByLabel(ctx, "Email (1)", accessibility.RoleTextbox)
	require.NoError(t, err)
	require.Equal(t, ":ar0:", input.LabelledBy)
	require.True(t, input.Focused)

	second, err := agt.FindByLabel(ctx, "Email (2)", accessibility.RoleTextbox)
	require.NoError(t, err)
	require.Equal(t, ":ar1:", second.LabelledBy)
	require.Empty(t, second.Value)
}

func TestAgent_ClickBase(t *testing.T) {
	agt, _, logs := startDemo(t, demo.Config{})
	ctx := context.Background()

	require.NoError(t, agt.Click(ctx, "base +1"))
	require.True(t, agt.ContainsText("base = 2, doubled (memo) = 4"))
	require.Equal(t, 2, logs.FilterMessage("recompute").Len())
}

func TestAgent_ScriptDrivesReducer(t *testing.T) {
	agt, _, logs := startDemo(t, demo.Config{})
	script := `
# reducer walk-through
press INCR
press INCR
press SET_NAME
press DECR
expect {"count":1,"name":"Temuujin"}
key r
expect {"count":0,"name":""}
type name = Bataa
key enter
expect "name":"Bataa"
reject Temuujin
`
	require.NoError(t, agt.Run(context.Background(), strings.NewReader(script)))
	require.Equal(t, 2, logs.FilterMessage("reducer -> INCR").Len())
	require.Equal(t, 1, logs.FilterMessage("reducer -> RESET").Len())
	require.Equal(t, 2, logs.FilterMessage("reducer -> SET_NAME").Len())
}

func TestAgent_ScriptErrors(t *testing.T) {
	agt, _, _ := startDemo(t, demo.Config{})
	ctx := context.Background()

	err := agt.Run(ctx, strings.NewReader("dance now"))
	require.ErrorIs(t, err, ErrUnknownCommand)
	require.Contains(t, err.Error(), "line 1")

	err = agt.Run(ctx, strings.NewReader("\n\npress Nope"))
	require.ErrorIs(t, err, ErrWidgetNotFound)
	require.Contains(t, err.Error(), "line 3")

	err = agt.Run(ctx, strings.NewReader("key shift-hyper"))
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestAgent_SnapshotJSON(t *testing.T) {
	agt, _, _ := startDemo(t, demo.Config{})

	raw, err := agt.SnapshotJSON(context.Background())
	require.NoError(t, err)
	require.Contains(t, string(raw), `"widgets"`)
	require.Contains(t, string(raw), "Save (memo child)")
}

func TestAgent_FindByRole(t *testing.T) {
	agt, _, _ := startDemo(t, demo.Config{})

	inputs, err := agt.FindByRole(context.Background(), accessibility.RoleTextbox)
	require.NoError(t, err)
	require.Len(t, inputs, 3)
}

func TestAgent_NoApp(t *testing.T) {
	agt := New(Config{})
	require.NotNil(t, agt.Backend())
	require.ErrorIs(t, agt.Activate(context.Background(), "OK"), ErrNoApp)
	_, err := agt.Snapshot(context.Background())
	require.ErrorIs(t, err, ErrNoApp)
}
