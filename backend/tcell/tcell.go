// Package tcell adapts a tcell screen to backend.Backend.
package tcell

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Backend drives a real terminal through tcell.
type Backend struct {
	screen  tcell.Screen
	buttons tcell.ButtonMask
	pasting bool
	paste   strings.Builder
}

// New creates a backend for the current terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the terminal and enables mouse and paste reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal size in cells.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// HideCursor hides the text cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, mainc rune, combc []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, combc, style)
}

// SetRow writes a run of cells on one row.
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

// Show flushes pending cell updates.
func (b *Backend) Show() {
	b.screen.Show()
}

// PollEvent waits for the next translated event.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if out := b.translate(ev); out != nil {
			return out
		}
	}
}

func (b *Backend) translate(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventPaste:
		if e.Start() {
			b.pasting = true
			b.paste.Reset()
			return nil
		}
		b.pasting = false
		return terminal.PasteEvent{Text: b.paste.String()}
	case *tcell.EventKey:
		if b.pasting {
			if e.Key() == tcell.KeyRune {
				b.paste.WriteRune(e.Rune())
			} else if e.Key() == tcell.KeyEnter {
				b.paste.WriteRune('\n')
			}
			return nil
		}
		return translateKey(e)
	case *tcell.EventMouse:
		return b.translateMouse(e)
	}
	return nil
}

func translateKey(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	out := terminal.KeyEvent{
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	switch e.Key() {
	case tcell.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = e.Rune()
	case tcell.KeyEnter:
		out.Key = terminal.KeyEnter
	case tcell.KeyEscape:
		out.Key = terminal.KeyEscape
	case tcell.KeyTab:
		out.Key = terminal.KeyTab
	case tcell.KeyBacktab:
		out.Key = terminal.KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = terminal.KeyBackspace
	case tcell.KeyDelete:
		out.Key = terminal.KeyDelete
	case tcell.KeyLeft:
		out.Key = terminal.KeyLeft
	case tcell.KeyRight:
		out.Key = terminal.KeyRight
	case tcell.KeyUp:
		out.Key = terminal.KeyUp
	case tcell.KeyDown:
		out.Key = terminal.KeyDown
	case tcell.KeyHome:
		out.Key = terminal.KeyHome
	case tcell.KeyEnd:
		out.Key = terminal.KeyEnd
	case tcell.KeyCtrlC:
		out.Key = terminal.KeyCtrlC
	case tcell.KeyCtrlV:
		out.Key = terminal.KeyCtrlV
	case tcell.KeyCtrlX:
		out.Key = terminal.KeyCtrlX
	default:
		return nil
	}
	return out
}

func (b *Backend) translateMouse(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	buttons := e.Buttons()
	prev := b.buttons
	b.buttons = buttons
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button = terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		out.Button = terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		out.Button = terminal.MouseLeft
	case buttons&tcell.Button3 != 0:
		out.Button = terminal.MouseMiddle
	case buttons&tcell.Button2 != 0:
		out.Button = terminal.MouseRight
	}
	switch {
	case buttons == tcell.ButtonNone && prev != tcell.ButtonNone:
		out.Action = terminal.MouseRelease
		out.Button = releasedButton(prev)
	case buttons != tcell.ButtonNone && prev == tcell.ButtonNone:
		out.Action = terminal.MousePress
	default:
		out.Action = terminal.MouseMove
	}
	return out
}

func releasedButton(prev tcell.ButtonMask) terminal.MouseButton {
	switch {
	case prev&tcell.Button1 != 0:
		return terminal.MouseLeft
	case prev&tcell.Button3 != 0:
		return terminal.MouseMiddle
	case prev&tcell.Button2 != 0:
		return terminal.MouseRight
	}
	return terminal.MouseNone
}
