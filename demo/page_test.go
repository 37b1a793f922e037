package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/terminal"
	"github.com/odvcencio/furry-hooks/trace"
)

func key(r rune) runtime.KeyMsg {
	return runtime.KeyMsg{Key: terminal.KeyRune, Rune: r}
}

func TestPage_MemoChildSkipsParentRenders(t *testing.T) {
	logger, logs := observed()
	page, _ := mountPage(t, Config{Logger: logger, IDPrefix: "t"})

	for i := 0; i < 5; i++ {
		page.BumpParent()
	}

	require.Equal(t, 5, page.ParentRenders())
	require.Equal(t, 6, page.Renders())
	require.Equal(t, 1, page.Harness().MemoRenders())
	require.Equal(t, 6, page.Harness().PlainRenders())
	require.Equal(t, 1, logs.FilterMessage("memo child render").Len())
	require.Equal(t, 6, logs.FilterMessage("plain child render").Len())
	require.Equal(t, 6, logs.FilterMessage("page render").Len())
}

func TestPage_CallbackIdentity(t *testing.T) {
	page, _ := mountPage(t, Config{IDPrefix: "t"})
	h := page.Harness()

	require.Same(t, page.OnSave(), h.SaveButton().OnClick())
	fresh := h.ClickButton().OnClick()

	page.BumpParent()

	require.Same(t, page.OnSave(), h.SaveButton().OnClick())
	require.NotSame(t, fresh, h.ClickButton().OnClick())
}

func TestPage_ChildClicks(t *testing.T) {
	logger, logs := observed()
	page, _ := mountPage(t, Config{Logger: logger, IDPrefix: "t"})

	page.Harness().ClickButton().Press()
	require.Equal(t, 1, logs.FilterMessage("plain child clicked").Len())

	page.Harness().SaveButton().Press()
	require.Equal(t, 1, logs.FilterMessage("save called").Len())
	require.NotNil(t, page.Alert())
	require.Equal(t, "Saved!", page.Alert().Message())

	// Clicking does not re-render the parent.
	require.Equal(t, 1, page.Renders())
}

func TestPage_BumpButtonRerendersParent(t *testing.T) {
	page, screen := mountPage(t, Config{IDPrefix: "t"})

	page.Harness().BumpButton().Press()

	require.Equal(t, 1, page.ParentRenders())
	require.Contains(t, screenText(screen), "Parent count: 1")
}

func TestPage_KeyShortcuts(t *testing.T) {
	page, screen := mountPage(t, Config{IDPrefix: "t"})

	for _, r := range "iin+" {
		require.True(t, screen.HandleMessage(key(r)).Handled)
	}

	require.Equal(t, CounterState{Count: 2, Name: "Temuujin"}, page.Counter().State())
	require.Equal(t, 2, page.Base())
	text := screenText(screen)
	require.Contains(t, text, `{"count":2,"name":"Temuujin"}`)
	require.Contains(t, text, "base = 2, doubled (memo) = 4")

	result := screen.HandleMessage(key('q'))
	require.Equal(t, []runtime.Command{runtime.Quit{}}, result.Commands)
	require.False(t, screen.HandleMessage(key('z')).Handled)
}

func TestPage_UnchangedStateSkipsRender(t *testing.T) {
	page, _ := mountPage(t, Config{IDPrefix: "t"})

	page.Dispatch(Reset{})
	require.Equal(t, 1, page.Renders())

	page.Dispatch(Increment{})
	require.Equal(t, 2, page.Renders())
}

func TestPage_MountShowsStateSetBeforehand(t *testing.T) {
	page := NewPage(Config{IDPrefix: "t"})
	t.Cleanup(page.Close)

	page.Dispatch(SetName{Name: "<&>"})
	page.BumpParent()
	require.Equal(t, 1, page.Renders())

	screen := runtime.NewScreen(100, 40)
	screen.SetRoot(page)
	require.Equal(t, 2, page.Renders())

	out := screenText(screen)
	require.Contains(t, out, `{"count":0,"name":"<&>"}`)
	require.Contains(t, out, "Parent count: 1")

	page.Sync()
	require.Equal(t, 2, page.Renders())
}

func TestPage_MountWithoutChangesDoesNotRender(t *testing.T) {
	page, _ := mountPage(t, Config{IDPrefix: "t"})
	require.Equal(t, 1, page.Renders())
}

func TestPage_NameInputDispatchesSetName(t *testing.T) {
	page, _ := mountPage(t, Config{IDPrefix: "t"})
	input := page.Counter().NameInput()

	input.Focus()
	input.SetText("Bataa")
	input.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})

	require.Equal(t, "Bataa", page.Counter().State().Name)
}

func TestPage_StableIDs(t *testing.T) {
	logger, logs := observed()
	page, screen := mountPage(t, Config{Logger: logger, IDPrefix: "t"})

	got := page.Identity().IDs()
	require.Len(t, got, 2)
	require.NotEqual(t, got[0], got[1])
	require.Equal(t, []string{":tr0:", ":tr1:"}, got)

	page.BumpParent()
	page.IncrementBase()
	require.Equal(t, got, page.Identity().IDs())

	entries := logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == string(trace.SectionIDs)
	}).All()
	require.Len(t, entries, 1)
	require.Equal(t, got[0], entries[0].ContextMap()["email1"])
	require.Equal(t, got[1], entries[0].ContextMap()["email2"])

	for _, f := range page.Identity().Fields() {
		require.Equal(t, f.Input().ID(), f.Label().For())
	}
	require.Contains(t, screenText(screen), "Email (1)  for=:tr0:")
}

func TestPage_DefaultPrefixIsUnique(t *testing.T) {
	a := NewPage(Config{})
	b := NewPage(Config{})
	t.Cleanup(a.Close)
	t.Cleanup(b.Close)

	require.NotEqual(t, a.IDs().Prefix(), b.IDs().Prefix())
	require.NotEqual(t, a.Identity().IDs()[0], b.Identity().IDs()[0])
}

func TestPage_SnapshotRestores(t *testing.T) {
	page, _ := mountPage(t, Config{IDPrefix: "h"})
	page.BumpParent()
	page.IncrementBase()
	page.Dispatch(SetName{Name: "Temuujin"})
	page.Dispatch(Increment{})

	snap := page.Snapshot()
	restored := NewPage(Config{Initial: &snap})
	t.Cleanup(restored.Close)

	require.Equal(t, snap, restored.Snapshot())
	require.Equal(t, "base = 2, doubled (memo) = 4", restored.Derived().Value())
}

func TestPage_TraceConsoleToggle(t *testing.T) {
	ring := trace.NewRing(32, zapcore.InfoLevel)
	logger := trace.NewConsole(nil, zapcore.InfoLevel, ring)
	page, screen := mountPage(t, Config{Logger: logger, Ring: ring, IDPrefix: "t"})

	require.True(t, page.TraceVisible())
	require.Contains(t, screenText(screen), "page: page render")

	screen.HandleMessage(key('t'))
	require.False(t, page.TraceVisible())
	require.NotContains(t, screenText(screen), "page: page render")

	screen.HandleMessage(key('t'))
	require.True(t, page.TraceVisible())
}

func TestPage_TickRepaintsOnNewTrace(t *testing.T) {
	ring := trace.NewRing(32, zapcore.InfoLevel)
	logger := trace.NewConsole(nil, zapcore.InfoLevel, ring)
	page, screen := mountPage(t, Config{Logger: logger, Ring: ring, IDPrefix: "t"})
	screenText(screen)

	require.False(t, page.HandleMessage(runtime.TickMsg{}).Handled)
	page.Harness().ClickButton().Press()
	require.True(t, page.HandleMessage(runtime.TickMsg{}).Handled)
}
