// Package clipboard abstracts copy and paste for text inputs.
package clipboard

import "sync"

// Clipboard reads and writes plain text.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
	Available() bool
}

// MemoryClipboard keeps the clipboard in process memory.
// A nil *MemoryClipboard is usable and always empty.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	if c == nil {
		return "", nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// Write replaces the stored text.
func (c *MemoryClipboard) Write(text string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

// Available always reports true.
func (c *MemoryClipboard) Available() bool {
	return true
}

// UnavailableClipboard drops writes and reads back nothing.
type UnavailableClipboard struct{}

func (UnavailableClipboard) Read() (string, error) { return "", nil }

func (UnavailableClipboard) Write(string) error { return nil }

func (UnavailableClipboard) Available() bool { return false }
