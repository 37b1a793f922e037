// Package demo assembles the hooks demo page: a memoized child harness, a
// derived-value cache, a reducer-driven counter and a pair of stable ids.
package demo

import (
	"time"

	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/ids"
	"github.com/odvcencio/furry-hooks/trace"
)

const (
	defaultTraceRows   = 6
	defaultSaveDismiss = 2 * time.Second
)

// Config configures a Page. Zero values pick defaults.
type Config struct {
	// Logger receives every trace line. Nil discards them.
	Logger *zap.Logger
	// IDPrefix seeds the id allocator when IDs is nil. Empty picks a fresh ULID.
	IDPrefix string
	// IDs overrides the allocator, for callers that render the same tree twice.
	IDs *ids.Allocator
	// Ring backs the on-screen trace console. Nil hides the console.
	Ring *trace.Ring
	// TraceRows is the console height in lines.
	TraceRows int
	// SaveDismiss closes the "Saved!" overlay after the delay.
	// Negative keeps it open until a key is pressed.
	SaveDismiss time.Duration
	// Initial restores state captured by Page.Snapshot.
	Initial *Snapshot
}

// Snapshot is the page state needed to rebuild an identical page.
type Snapshot struct {
	ParentRenders int          `json:"parentRenders" msgpack:"parent_renders"`
	Base          int          `json:"base" msgpack:"base"`
	Counter       CounterState `json:"counter" msgpack:"counter"`
	IDPrefix      string       `json:"idPrefix" msgpack:"id_prefix"`
	IDs           []string     `json:"ids" msgpack:"ids"`
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.TraceRows <= 0 {
		c.TraceRows = defaultTraceRows
	}
	if c.SaveDismiss == 0 {
		c.SaveDismiss = defaultSaveDismiss
	}
	if c.IDs == nil {
		prefix := c.IDPrefix
		if c.Initial != nil && c.Initial.IDPrefix != "" {
			prefix = c.Initial.IDPrefix
		}
		c.IDs = ids.New(prefix)
	}
	return c
}
