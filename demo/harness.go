package demo

import (
	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/widgets"
)

const harnessNotes = "- `Save (memo child)` is memoized and receives `onSave`, a callback created " +
	"once, so parent re-renders *skip* it.\n" +
	"- `Click (plain child)` is not memoized and gets a fresh callback, so it renders on " +
	"*every* parent render.\n"

type saveProps struct {
	OnSave *state.Callback
}

type clickProps struct {
	OnClick *state.Callback
}

// Harness is the memoized-child section. A memoized child and a plain child
// sit side by side under the same parent.
type Harness struct {
	log   *zap.Logger
	count *widgets.SignalLabel
	bump  *widgets.Button
	save  *widgets.Button
	click *widgets.Button
	memo  *widgets.Memo[saveProps]
	plain *widgets.Plain[clickProps]
	view  *widgets.Section
}

func newHarness(log *zap.Logger, count state.Readable[string], bump *state.Callback) *Harness {
	h := &Harness{log: log}
	h.count = widgets.NewSignalLabel(count, nil)
	h.bump = widgets.NewButton("Re-render parent (+1)", bump)
	h.save = widgets.NewButton("Save (memo child)", nil)
	h.memo = widgets.NewMemo(h.save, func(p saveProps) {
		h.log.Info("memo child render")
		h.save.SetOnClick(p.OnSave)
	})
	h.click = widgets.NewButton("Click (plain child)", nil)
	h.plain = widgets.NewPlain(h.click, func(p clickProps) {
		h.log.Info("plain child render")
		h.click.SetOnClick(p.OnClick)
	})
	h.view = widgets.NewSection("1) Memo child + stable callback", widgets.VStack(
		h.count,
		widgets.HStack(h.bump, h.memo, h.plain),
		widgets.NewMarkdown(harnessNotes),
	))
	return h
}

// render runs as part of every parent render.
func (h *Harness) render(onSave *state.Callback) {
	h.memo.Update(saveProps{OnSave: onSave})
	h.plain.Update(clickProps{OnClick: state.NewCallback(func() {
		h.log.Info("plain child clicked")
	})})
}

// MemoRenders returns how many times the memoized child rendered.
func (h *Harness) MemoRenders() int {
	return h.memo.Renders()
}

// PlainRenders returns how many times the plain child rendered.
func (h *Harness) PlainRenders() int {
	return h.plain.Renders()
}

// SaveButton returns the memoized child's button.
func (h *Harness) SaveButton() *widgets.Button {
	return h.save
}

// ClickButton returns the plain child's button.
func (h *Harness) ClickButton() *widgets.Button {
	return h.click
}

// BumpButton returns the parent re-render button.
func (h *Harness) BumpButton() *widgets.Button {
	return h.bump
}

// View returns the section widget.
func (h *Harness) View() *widgets.Section {
	return h.view
}
