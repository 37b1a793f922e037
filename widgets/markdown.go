package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
)

var markdown = goldmark.New()

// span is a run of text sharing one style.
type span struct {
	text  string
	style backend.Style
}

// mdBlock is one paragraph or list item.
type mdBlock struct {
	prefix string
	spans  []span
}

// Markdown renders a small subset of CommonMark: paragraphs, headings,
// bullet lists, emphasis and code spans. Blocks wrap at word boundaries.
type Markdown struct {
	Base
	source string
	blocks []mdBlock
	theme  Theme
}

// NewMarkdown parses source.
func NewMarkdown(source string) *Markdown {
	m := &Markdown{theme: DefaultTheme()}
	m.SetSource(source)
	return m
}

// SetSource replaces and reparses the document.
func (m *Markdown) SetSource(source string) {
	m.source = source
	m.blocks = parseMarkdown([]byte(source), m.theme)
}

// Source returns the markdown document.
func (m *Markdown) Source() string {
	return m.source
}

// PlainText returns the document without markup, one block per line.
func (m *Markdown) PlainText() string {
	lines := make([]string, 0, len(m.blocks))
	for _, b := range m.blocks {
		var sb strings.Builder
		sb.WriteString(b.prefix)
		for _, s := range b.spans {
			sb.WriteString(s.text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func parseMarkdown(source []byte, theme Theme) []mdBlock {
	doc := markdown.Parser().Parse(text.NewReader(source))
	var blocks []mdBlock
	current := -1
	styles := []backend.Style{theme.Text}

	push := func(style backend.Style) { styles = append(styles, style) }
	pop := func() {
		if len(styles) > 1 {
			styles = styles[:len(styles)-1]
		}
	}
	open := func(prefix string) {
		blocks = append(blocks, mdBlock{prefix: prefix})
		current = len(blocks) - 1
	}
	emit := func(s string) {
		if current < 0 {
			open("")
		}
		blocks[current].spans = append(blocks[current].spans, span{text: s, style: styles[len(styles)-1]})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.ListItem:
			if entering {
				open("• ")
			} else {
				current = -1
			}
		case *ast.Paragraph, *ast.TextBlock:
			if _, inItem := n.Parent().(*ast.ListItem); inItem && n.PreviousSibling() == nil {
				break
			}
			if entering {
				open("")
			} else {
				current = -1
			}
		case *ast.Heading:
			if entering {
				open("")
				push(theme.Title)
			} else {
				pop()
				current = -1
			}
		case *ast.Emphasis:
			if !entering {
				pop()
				break
			}
			if node.Level >= 2 {
				push(styles[len(styles)-1].Bold(true))
			} else {
				push(styles[len(styles)-1].Italic(true))
			}
		case *ast.CodeSpan:
			if entering {
				push(theme.Accent)
			} else {
				pop()
			}
		case *ast.Text:
			if entering {
				emit(string(node.Segment.Value(source)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					emit(" ")
				}
			}
		case *ast.String:
			if entering {
				emit(string(node.Value))
			}
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// word is one unbreakable run; space marks a break opportunity before it.
type word struct {
	text  string
	style backend.Style
	space bool
}

func blockWords(b mdBlock) []word {
	var words []word
	pending := false
	for _, s := range b.spans {
		for i, part := range strings.Split(s.text, " ") {
			if i > 0 {
				pending = true
			}
			if part == "" {
				continue
			}
			words = append(words, word{text: part, style: s.style, space: pending})
			pending = false
		}
	}
	return words
}

// wrapBlock lays the block out into lines of styled spans no wider than width.
// Continuation lines are indented under the prefix.
func wrapBlock(b mdBlock, width int, prefixStyle backend.Style) [][]span {
	indentWidth := runewidth.StringWidth(b.prefix)
	indent := strings.Repeat(" ", indentWidth)
	var lines [][]span
	line := []span{{text: b.prefix, style: prefixStyle}}
	col := indentWidth
	lineStart := true
	for _, w := range blockWords(b) {
		size := runewidth.StringWidth(w.text)
		gap := 0
		if w.space && !lineStart {
			gap = 1
		}
		if !lineStart && col+gap+size > width {
			lines = append(lines, line)
			line = []span{{text: indent, style: prefixStyle}}
			col = indentWidth
			lineStart = true
			gap = 0
		}
		if gap > 0 {
			line = append(line, span{text: " ", style: w.style})
			col++
		}
		text := runewidth.Truncate(w.text, max(0, width-col), "")
		line = append(line, span{text: text, style: w.style})
		col += runewidth.StringWidth(text)
		lineStart = false
	}
	return append(lines, line)
}

func (m *Markdown) lines(width int) [][]span {
	if width <= 0 {
		return nil
	}
	var out [][]span
	for _, b := range m.blocks {
		out = append(out, wrapBlock(b, width, m.theme.Muted)...)
	}
	return out
}

// Measure returns the wrapped height at the available width.
func (m *Markdown) Measure(constraints runtime.Constraints) runtime.Size {
	width := constraints.MaxWidth
	if width <= 0 {
		width = runewidth.StringWidth(m.PlainText())
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: len(m.lines(width))})
}

// Render draws the wrapped document.
func (m *Markdown) Render(ctx runtime.RenderContext) {
	bounds := m.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	for row, line := range m.lines(bounds.Width) {
		if row >= bounds.Height {
			break
		}
		y := bounds.Y + row
		x := bounds.X
		ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: 1}, ' ', m.theme.Text)
		for _, s := range line {
			x += ctx.Buffer.SetString(x, y, s.text, s.style)
		}
	}
}

func (m *Markdown) AccessibleRole() accessibility.Role        { return accessibility.RoleText }
func (m *Markdown) AccessibleLabel() string                   { return m.PlainText() }
func (m *Markdown) AccessibleDescription() string             { return "" }
func (m *Markdown) AccessibleValue() *accessibility.ValueInfo { return nil }
