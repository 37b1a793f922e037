package demo

import (
	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/widgets"
)

const counterNotes = "Each dispatch logs `reducer -> ...` and returns a *new* state value; " +
	"the old one is never mutated."

// setNamePayload is what the SET_NAME button dispatches.
const setNamePayload = "Temuujin"

// Counter is the reducer section.
type Counter struct {
	store *state.Store[CounterState, Action]
	state *widgets.Code
	name  *widgets.Input
	view  *widgets.Section
}

func newCounter(log *zap.Logger, initial CounterState) *Counter {
	c := &Counter{store: state.NewStore(TracedReducer(log), initial)}
	c.store.SetEqualFunc(state.EqualComparable[CounterState])

	dispatch := func(a Action) *state.Callback {
		return state.NewCallback(func() { c.store.Dispatch(a) })
	}
	c.state = widgets.NewCode("json", initial.JSON())
	c.name = widgets.NewInput()
	c.name.SetLabel("name")
	c.name.SetPlaceholder("type a name, Enter dispatches SET_NAME")
	c.name.OnSubmit(func(text string) {
		c.store.Dispatch(SetName{Name: text})
	})
	c.view = widgets.NewSection("3) Reducer", widgets.VStack(
		widgets.HStack(
			widgets.NewButton("INCR", dispatch(Increment{})),
			widgets.NewButton("DECR", dispatch(Decrement{})),
			widgets.NewButton("RESET", dispatch(Reset{})),
			widgets.NewButton("SET_NAME", dispatch(SetName{Name: setNamePayload})),
			widgets.NewLabel("state ="),
			c.state,
		),
		widgets.HStack(widgets.NewLabel("name:"), c.name),
		widgets.NewMarkdown(counterNotes),
	))
	return c
}

func (c *Counter) render(s CounterState) {
	c.state.SetSource(s.JSON())
}

// Store returns the reducer store.
func (c *Counter) Store() *state.Store[CounterState, Action] {
	return c.store
}

// Dispatch applies a to the store.
func (c *Counter) Dispatch(a Action) {
	c.store.Dispatch(a)
}

// State returns the current reducer state.
func (c *Counter) State() CounterState {
	return c.store.Get()
}

// NameInput returns the free-form SET_NAME input.
func (c *Counter) NameInput() *widgets.Input {
	return c.name
}

// View returns the section widget.
func (c *Counter) View() *widgets.Section {
	return c.view
}
