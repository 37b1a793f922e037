package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-hooks/backend"
)

// Theme groups the styles widgets draw with.
type Theme struct {
	Text          backend.Style
	Muted         backend.Style
	Title         backend.Style
	Border        backend.Style
	Button        backend.Style
	ButtonFocused backend.Style
	Input         backend.Style
	InputFocused  backend.Style
	Placeholder   backend.Style
	Accent        backend.Style
	Code          backend.Style
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	base := backend.DefaultStyle()
	return Theme{
		Text:          base,
		Muted:         base.Foreground(tcell.ColorGray),
		Title:         base.Foreground(tcell.ColorTeal).Bold(true),
		Border:        base.Foreground(tcell.ColorSilver),
		Button:        base.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy),
		ButtonFocused: base.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua).Bold(true),
		Input:         base.Underline(true),
		InputFocused:  base.Underline(true).Bold(true),
		Placeholder:   base.Foreground(tcell.ColorGray).Dim(true),
		Accent:        base.Foreground(tcell.ColorYellow).Bold(true),
		Code:          base.Foreground(tcell.ColorLightGray),
	}
}
