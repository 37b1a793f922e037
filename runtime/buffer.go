package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/backend"
)

// Cell represents a single character cell in the buffer.
type Cell = backend.Cell

// Buffer is the off-screen grid widgets render into.
// Only cells whose content changed are marked dirty, so the app flushes
// the minimal set of cells to the backend after each render pass.
type Buffer struct {
	cells      []Cell
	dirty      []bool
	width      int
	height     int
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a blank buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the dimensions and marks everything dirty.
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == b.width && h == b.height && b.cells != nil {
		return
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	for y := 0; y < min(h, b.height); y++ {
		n := min(w, b.width)
		copy(cells[y*w:y*w+n], b.cells[y*b.width:y*b.width+n])
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with style at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	cell := Cell{Rune: r, Style: s}
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	b.markDirty(x, y, idx)
}

// SetString writes s starting at (x, y) and returns the columns used.
// Wide runes occupy two cells; the second is padded with a space.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, r, style)
		if w == 2 {
			b.Set(col+1, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// Fill fills r with ch and style, clipped to the buffer.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	x0 := max(0, r.X)
	y0 := max(0, r.Y)
	x1 := min(b.width, r.X+r.Width)
	y1 := min(b.height, r.Y+r.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// DrawRoundedBox draws a rounded border around r.
func (b *Buffer) DrawRoundedBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	b.Set(r.X, r.Y, '╭', s)
	b.Set(right, r.Y, '╮', s)
	b.Set(r.X, bottom, '╰', s)
	b.Set(right, bottom, '╯', s)
	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, bottom, '─', s)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(right, y, '│', s)
	}
}

func (b *Buffer) markDirty(x, y, idx int) {
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	if b.dirtyCount == 0 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
	} else {
		x0 := min(b.dirtyRect.X, x)
		y0 := min(b.dirtyRect.Y, y)
		x1 := max(b.dirtyRect.X+b.dirtyRect.Width, x+1)
		y1 := max(b.dirtyRect.Y+b.dirtyRect.Height, y+1)
		b.dirtyRect = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	}
	b.dirtyCount++
}

// MarkAllDirty forces a full redraw on the next flush.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = Rect{Width: b.width, Height: b.height}
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	for i := range b.dirty {
		b.dirty[i] = false
	}
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed since the last flush.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// ForEachDirtySpan calls fn for each horizontal run of dirty cells.
// endX is exclusive.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if fn == nil || b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height; y++ {
		start := -1
		for x := r.X; x < r.X+r.Width; x++ {
			if b.dirty[y*b.width+x] {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				fn(y, start, x)
				start = -1
			}
		}
		if start >= 0 {
			fn(y, start, r.X+r.Width)
		}
	}
}

// Cells returns the row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}
