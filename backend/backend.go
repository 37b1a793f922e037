// Package backend defines the terminal surface the runtime draws to.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-hooks/terminal"
)

// Style is the cell style shared by all backends.
type Style = tcell.Style

// Color is a terminal color.
type Color = tcell.Color

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return tcell.StyleDefault
}

// Cell is one character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// Backend is a terminal implementation.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	HideCursor()
	SetContent(x, y int, mainc rune, combc []rune, style Style)
	Show()
	// PollEvent blocks until an event is available.
	// It returns nil after Fini.
	PollEvent() terminal.Event
}

// RowWriter is an optional optimization for bulk row updates.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}
