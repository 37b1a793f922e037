// Package sim provides an in-memory backend for tests and headless runs.
package sim

import (
	"encoding/binary"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Backend records drawn cells and replays injected events.
type Backend struct {
	mu     sync.Mutex
	width  int
	height int
	cells  []backend.Cell
	front  []backend.Cell
	shows  int
	events chan terminal.Event
	done   chan struct{}
	once   sync.Once
}

// New creates a simulation backend with the given size.
func New(width, height int) *Backend {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	b := &Backend{
		width:  width,
		height: height,
		events: make(chan terminal.Event, 256),
		done:   make(chan struct{}),
	}
	b.cells = blank(width * height)
	b.front = blank(width * height)
	return b
}

func blank(n int) []backend.Cell {
	cells := make([]backend.Cell, n)
	for i := range cells {
		cells[i] = backend.Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	return cells
}

// Init is a no-op.
func (b *Backend) Init() error {
	return nil
}

// Fini unblocks PollEvent.
func (b *Backend) Fini() {
	b.once.Do(func() {
		close(b.done)
	})
}

// Size returns the simulated terminal size.
func (b *Backend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// HideCursor is a no-op.
func (b *Backend) HideCursor() {}

// SetContent writes a cell into the back buffer.
func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = backend.Cell{Rune: mainc, Style: style}
}

// Show publishes the back buffer.
func (b *Backend) Show() {
	b.mu.Lock()
	copy(b.front, b.cells)
	b.shows++
	b.mu.Unlock()
}

// Shows returns how many frames were published.
func (b *Backend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// PollEvent returns the next injected event, or nil after Fini.
func (b *Backend) PollEvent() terminal.Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return nil
	}
}

// Inject queues an event.
func (b *Backend) Inject(ev terminal.Event) {
	if ev == nil {
		return
	}
	select {
	case b.events <- ev:
	case <-b.done:
	}
}

// InjectKey queues a special key press.
func (b *Backend) InjectKey(key terminal.Key) {
	b.Inject(terminal.KeyEvent{Key: key})
}

// InjectRune queues a printable key press.
func (b *Backend) InjectRune(r rune) {
	b.Inject(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
}

// InjectString queues one key press per rune.
func (b *Backend) InjectString(s string) {
	for _, r := range s {
		b.InjectRune(r)
	}
}

// InjectClick queues a left press and release at x, y.
func (b *Backend) InjectClick(x, y int) {
	b.Inject(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
	b.Inject(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MouseRelease})
}

// Resize changes the simulated size and queues a resize event.
func (b *Backend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.cells = blank(width * height)
	b.front = blank(width * height)
	b.mu.Unlock()
	b.Inject(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture returns the last shown frame as text, one line per row.
// Trailing spaces are trimmed.
func (b *Backend) Capture() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		row := make([]rune, b.width)
		for x := 0; x < b.width; x++ {
			r := b.front[y*b.width+x].Rune
			if r == 0 {
				r = ' '
			}
			row[x] = r
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ContainsText reports whether text appears in the last frame.
func (b *Backend) ContainsText(text string) bool {
	return strings.Contains(b.Capture(), text)
}

// FindText returns the cell position of text, or (-1, -1).
func (b *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(b.Capture(), "\n") {
		if idx := strings.Index(line, text); idx >= 0 {
			return len([]rune(line[:idx])), row
		}
	}
	return -1, -1
}

// Fingerprint hashes the last shown frame, runes and styles.
func (b *Backend) Fingerprint() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	h := xxhash.New()
	var buf [8]byte
	for _, cell := range b.front {
		fg, bg, attrs := cell.Style.Decompose()
		binary.LittleEndian.PutUint64(buf[:], uint64(cell.Rune)<<32|uint64(attrs))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(fg)^uint64(bg)<<1)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
