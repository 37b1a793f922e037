package widgets

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
)

// Code shows source text highlighted with a chroma lexer.
type Code struct {
	Base
	source   string
	language string
	style    *chroma.Style
	lines    [][]span
	fallback backend.Style
}

// NewCode creates a highlighted block for the named language.
// Unknown languages render unhighlighted.
func NewCode(language, source string) *Code {
	c := &Code{
		language: language,
		style:    styles.Get("monokai"),
		fallback: DefaultTheme().Code,
	}
	c.SetSource(source)
	return c
}

// Source returns the displayed text.
func (c *Code) Source() string {
	return c.source
}

// SetSource replaces the text and re-tokenises it.
func (c *Code) SetSource(source string) {
	if source == c.source && c.lines != nil {
		return
	}
	c.source = source
	c.lines = highlight(c.language, source, c.style, c.fallback)
}

func highlight(language, source string, style *chroma.Style, fallback backend.Style) [][]span {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	lines := [][]span{nil}
	iter, err := lexer.Tokenise(nil, source)
	if err != nil {
		for i, line := range strings.Split(source, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			lines[i] = []span{{text: line, style: fallback}}
		}
		return lines
	}
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		st := tokenStyle(style, tok.Type, fallback)
		for i, part := range strings.Split(tok.Value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], span{text: part, style: st})
		}
	}
	// Lexers end input with a newline token; drop the empty trailing line.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

func tokenStyle(style *chroma.Style, tt chroma.TokenType, fallback backend.Style) backend.Style {
	if style == nil {
		return fallback
	}
	entry := style.Get(tt)
	out := fallback
	if entry.Colour.IsSet() {
		out = out.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		out = out.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		out = out.Italic(true)
	}
	return out
}

// Measure returns the widest line and the line count.
func (c *Code) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, line := range c.lines {
		w := 0
		for _, s := range line {
			w += runewidth.StringWidth(s.text)
		}
		width = max(width, w)
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: len(c.lines)})
}

// Render draws the highlighted lines, clipped to bounds.
func (c *Code) Render(ctx runtime.RenderContext) {
	bounds := c.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	for row, line := range c.lines {
		if row >= bounds.Height {
			break
		}
		y := bounds.Y + row
		ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: 1}, ' ', c.fallback)
		x := bounds.X
		right := bounds.X + bounds.Width
		for _, s := range line {
			if x >= right {
				break
			}
			x += ctx.Buffer.SetString(x, y, runewidth.Truncate(s.text, right-x, ""), s.style)
		}
	}
}

func (c *Code) AccessibleRole() accessibility.Role        { return accessibility.RoleText }
func (c *Code) AccessibleLabel() string                   { return c.source }
func (c *Code) AccessibleDescription() string             { return c.language }
func (c *Code) AccessibleValue() *accessibility.ValueInfo { return nil }
