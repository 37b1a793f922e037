package demo

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// CounterState is the reducer state.
type CounterState struct {
	Count int    `json:"count" msgpack:"count"`
	Name  string `json:"name" msgpack:"name"`
}

// JSON renders the state the way the page displays it. Markup characters
// in the name are kept as typed.
func (s CounterState) JSON() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "{}"
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// Action is a reducer action. The set is closed.
type Action interface {
	Kind() string
	action()
}

// Increment adds one to Count.
type Increment struct{}

// Decrement subtracts one from Count.
type Decrement struct{}

// SetName replaces Name.
type SetName struct {
	Name string
}

// Reset restores the initial state.
type Reset struct{}

func (Increment) Kind() string { return "INCR" }
func (Decrement) Kind() string { return "DECR" }
func (SetName) Kind() string   { return "SET_NAME" }
func (Reset) Kind() string     { return "RESET" }

func (Increment) action() {}
func (Decrement) action() {}
func (SetName) action()   {}
func (Reset) action()     {}

// Reduce returns the state after action. It never mutates s; a nil action
// returns s unchanged.
func Reduce(s CounterState, a Action) CounterState {
	switch a := a.(type) {
	case Increment:
		s.Count++
	case Decrement:
		s.Count--
	case SetName:
		s.Name = a.Name
	case Reset:
		s = CounterState{}
	}
	return s
}

// TracedReducer wraps Reduce, logging each handled action with the next state.
func TracedReducer(log *zap.Logger) func(CounterState, Action) CounterState {
	if log == nil {
		log = zap.NewNop()
	}
	return func(s CounterState, a Action) CounterState {
		if a == nil {
			return s
		}
		next := Reduce(s, a)
		log.Info("reducer -> "+a.Kind(),
			zap.Int("count", next.Count),
			zap.String("name", next.Name),
		)
		return next
	}
}
