package trace

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Entry is one captured trace line.
type Entry struct {
	Time    time.Time
	Logger  string
	Message string
	Fields  string
}

// String formats the entry as "logger: message k=v".
func (e Entry) String() string {
	var sb strings.Builder
	if e.Logger != "" {
		sb.WriteString(e.Logger)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Fields != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Fields)
	}
	return sb.String()
}

type ringBuffer struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	count   int
	total   uint64
}

// Ring is a zapcore.Core that keeps the most recent entries in memory.
// It backs the on-screen trace console.
type Ring struct {
	zapcore.LevelEnabler
	buf    *ringBuffer
	fields []zapcore.Field
}

var _ zapcore.Core = (*Ring)(nil)

// NewRing creates a ring holding up to size entries.
func NewRing(size int, level zapcore.LevelEnabler) *Ring {
	if size <= 0 {
		size = 64
	}
	if level == nil {
		level = zapcore.DebugLevel
	}
	return &Ring{
		LevelEnabler: level,
		buf:          &ringBuffer{entries: make([]Entry, size)},
	}
}

// With returns a core sharing the buffer with extra context fields.
func (r *Ring) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(r.fields)+len(fields))
	merged = append(merged, r.fields...)
	merged = append(merged, fields...)
	return &Ring{LevelEnabler: r.LevelEnabler, buf: r.buf, fields: merged}
}

// Check adds the ring to ce when the level is enabled.
func (r *Ring) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if r.Enabled(ent.Level) {
		return ce.AddCore(ent, r)
	}
	return ce
}

// Write stores the entry, evicting the oldest when full.
func (r *Ring) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := fields
	if len(r.fields) > 0 {
		all = append(append([]zapcore.Field{}, r.fields...), fields...)
	}
	entry := Entry{
		Time:    ent.Time,
		Logger:  ent.LoggerName,
		Message: ent.Message,
		Fields:  formatFields(all),
	}

	b := r.buf
	b.mu.Lock()
	size := len(b.entries)
	idx := (b.start + b.count) % size
	b.entries[idx] = entry
	if b.count < size {
		b.count++
	} else {
		b.start = (b.start + 1) % size
	}
	b.total++
	b.mu.Unlock()
	return nil
}

// Sync is a no-op.
func (r *Ring) Sync() error {
	return nil
}

// Entries returns the retained entries, oldest first.
func (r *Ring) Entries() []Entry {
	b := r.buf
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.entries[(b.start+i)%len(b.entries)]
	}
	return out
}

// Tail returns up to n of the newest entries, oldest first.
func (r *Ring) Tail(n int) []Entry {
	entries := r.Entries()
	if n >= 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// Total returns how many entries were ever written.
func (r *Ring) Total() uint64 {
	b := r.buf
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

func formatFields(fields []zapcore.Field) string {
	if len(fields) == 0 {
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, enc.Fields[k]))
	}
	return strings.Join(parts, " ")
}
