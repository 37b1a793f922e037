// Package ids allocates stable element identifiers for one mounted tree.
//
// Identifiers are allocated when a component instance is constructed and kept
// for its lifetime, so re-rendering never changes them. Two passes over the same
// tree that share a prefix and construct components in the same order produce
// identical identifiers, which is what lets a server-rendered pass and a later
// interactive pass agree on label/input associations.
package ids

import (
	"crypto/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Allocator hands out identifiers unique within its tree.
type Allocator struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

// New creates an allocator with an explicit prefix.
// An empty prefix is replaced by a fresh ULID so that independently
// mounted trees do not collide.
func New(prefix string) *Allocator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String())
	}
	return &Allocator{prefix: prefix}
}

// Prefix returns the tree prefix.
func (a *Allocator) Prefix() string {
	if a == nil {
		return ""
	}
	return a.prefix
}

// Next returns a new identifier of the form ":<prefix>r<n>:".
func (a *Allocator) Next() string {
	if a == nil {
		return ""
	}
	a.mu.Lock()
	n := a.next
	a.next++
	a.mu.Unlock()
	return ":" + a.prefix + "r" + strconv.FormatUint(n, 32) + ":"
}

// Allocated returns how many identifiers have been handed out.
func (a *Allocator) Allocated() uint64 {
	if a == nil {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}
