package widgets

import (
	"strings"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/backend"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/terminal"
)

// Input is a single-line text input with cursor and clipboard support.
// The cursor indexes bytes; input is expected to be mostly ASCII.
type Input struct {
	FocusableBase

	id          string
	label       string
	text        strings.Builder
	cursorPos   int
	style       backend.Style
	focusStyle  backend.Style
	placeholder string
	services    runtime.Services

	onSubmit func(text string)
	onChange func(text string)
}

// NewInput creates a new input widget.
func NewInput() *Input {
	theme := DefaultTheme()
	return &Input{
		style:      theme.Input,
		focusStyle: theme.InputFocused,
	}
}

// Bind attaches app services.
func (i *Input) Bind(services runtime.Services) {
	i.services = services
}

// Unbind releases app services.
func (i *Input) Unbind() {
	i.services = runtime.Services{}
}

// SetID sets the stable identifier labels refer to.
func (i *Input) SetID(id string) {
	i.id = id
}

// ID returns the stable identifier.
func (i *Input) ID() string {
	return i.id
}

// SetLabel sets the accessible label.
func (i *Input) SetLabel(label string) {
	i.label = label
}

// SetPlaceholder sets the placeholder text shown when empty.
func (i *Input) SetPlaceholder(text string) {
	i.placeholder = text
}

// Placeholder returns the placeholder text.
func (i *Input) Placeholder() string {
	return i.placeholder
}

// SetStyle sets the normal style.
func (i *Input) SetStyle(style backend.Style) {
	i.style = style
}

// SetFocusStyle sets the focused style.
func (i *Input) SetFocusStyle(style backend.Style) {
	i.focusStyle = style
}

// OnSubmit sets the callback for when Enter is pressed.
func (i *Input) OnSubmit(fn func(text string)) {
	i.onSubmit = fn
}

// OnChange sets the callback for when text changes.
func (i *Input) OnChange(fn func(text string)) {
	i.onChange = fn
}

// Text returns the current input text.
func (i *Input) Text() string {
	return i.text.String()
}

// SetText sets the input text and moves cursor to end.
func (i *Input) SetText(text string) {
	i.text.Reset()
	i.text.WriteString(text)
	i.cursorPos = i.text.Len()
}

// Clear clears the input text.
func (i *Input) Clear() {
	i.text.Reset()
	i.cursorPos = 0
}

// CursorPos returns the current cursor position.
func (i *Input) CursorPos() int {
	return i.cursorPos
}

// Measure fills the available width on one line.
func (i *Input) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  constraints.MaxWidth,
		Height: 1,
	})
}

// Render draws the input field.
func (i *Input) Render(ctx runtime.RenderContext) {
	bounds := i.bounds
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}

	style := i.style
	if i.focused {
		style = i.focusStyle
	}
	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', style)

	text := i.text.String()
	if text == "" && !i.focused && i.placeholder != "" {
		ctx.Buffer.SetString(bounds.X, bounds.Y, truncateString(i.placeholder, bounds.Width), DefaultTheme().Placeholder)
		return
	}

	// Scroll so the cursor stays visible.
	visibleStart := 0
	if i.cursorPos >= bounds.Width {
		visibleStart = i.cursorPos - bounds.Width + 1
	}
	visibleEnd := min(visibleStart+bounds.Width, len(text))
	visible := ""
	if visibleStart < len(text) {
		visible = text[visibleStart:visibleEnd]
	}
	ctx.Buffer.SetString(bounds.X, bounds.Y, visible, style)

	if i.focused {
		cursorX := bounds.X + i.cursorPos - visibleStart
		if cursorX >= bounds.X && cursorX < bounds.X+bounds.Width {
			var cursorChar rune = ' '
			if i.cursorPos < len(text) {
				cursorChar = rune(text[i.cursorPos])
			}
			ctx.Buffer.Set(cursorX, bounds.Y, cursorChar, style.Reverse(true))
		}
	}
}

// HandleMessage processes keyboard input and paste.
func (i *Input) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !i.focused {
		return runtime.Unhandled()
	}

	if paste, ok := msg.(runtime.PasteMsg); ok {
		if i.ClipboardPaste(paste.Text) {
			return runtime.Handled()
		}
		return runtime.Unhandled()
	}

	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyCtrlC:
		if i.copyToClipboard() {
			return runtime.Handled()
		}
	case terminal.KeyCtrlX:
		if i.cutToClipboard() {
			return runtime.Handled()
		}
	case terminal.KeyCtrlV:
		if i.pasteFromClipboard() {
			return runtime.Handled()
		}
	case terminal.KeyEnter:
		if i.onSubmit != nil {
			i.onSubmit(i.text.String())
		}
		return runtime.Handled()

	case terminal.KeyBackspace:
		if i.cursorPos > 0 {
			text := i.text.String()
			i.text.Reset()
			i.text.WriteString(text[:i.cursorPos-1])
			i.text.WriteString(text[i.cursorPos:])
			i.cursorPos--
			i.notifyChange()
		}
		return runtime.Handled()

	case terminal.KeyDelete:
		text := i.text.String()
		if i.cursorPos < len(text) {
			i.text.Reset()
			i.text.WriteString(text[:i.cursorPos])
			i.text.WriteString(text[i.cursorPos+1:])
			i.notifyChange()
		}
		return runtime.Handled()

	case terminal.KeyLeft:
		if key.Ctrl {
			i.cursorPos = i.wordBoundaryLeft()
		} else if i.cursorPos > 0 {
			i.cursorPos--
		}
		return runtime.Handled()

	case terminal.KeyRight:
		if key.Ctrl {
			i.cursorPos = i.wordBoundaryRight()
		} else if i.cursorPos < i.text.Len() {
			i.cursorPos++
		}
		return runtime.Handled()

	case terminal.KeyHome:
		i.cursorPos = 0
		return runtime.Handled()

	case terminal.KeyEnd:
		i.cursorPos = i.text.Len()
		return runtime.Handled()

	case terminal.KeyRune:
		i.insertText(string(key.Rune))
		return runtime.Handled()
	}

	return runtime.Unhandled()
}

func (i *Input) notifyChange() {
	if i.onChange != nil {
		i.onChange(i.text.String())
	}
}

// ClipboardCopy returns the current text.
func (i *Input) ClipboardCopy() (string, bool) {
	if i == nil {
		return "", false
	}
	return i.text.String(), true
}

// ClipboardCut returns the current text and clears the input.
func (i *Input) ClipboardCut() (string, bool) {
	if i == nil {
		return "", false
	}
	text := i.text.String()
	i.Clear()
	i.notifyChange()
	return text, true
}

// ClipboardPaste inserts text at the cursor. Newlines are dropped.
func (i *Input) ClipboardPaste(text string) bool {
	text = strings.ReplaceAll(text, "\n", "")
	if i == nil || text == "" {
		return false
	}
	i.insertText(text)
	return true
}

func (i *Input) copyToClipboard() bool {
	cb := i.services.Clipboard()
	if !cb.Available() {
		return false
	}
	text, ok := i.ClipboardCopy()
	if !ok {
		return false
	}
	_ = cb.Write(text)
	return true
}

func (i *Input) cutToClipboard() bool {
	cb := i.services.Clipboard()
	if !cb.Available() {
		return false
	}
	text, ok := i.ClipboardCut()
	if !ok {
		return false
	}
	_ = cb.Write(text)
	return true
}

func (i *Input) pasteFromClipboard() bool {
	cb := i.services.Clipboard()
	if !cb.Available() {
		return false
	}
	text, err := cb.Read()
	if err != nil || text == "" {
		return false
	}
	return i.ClipboardPaste(text)
}

func (i *Input) insertText(text string) {
	if text == "" {
		return
	}
	current := i.text.String()
	i.text.Reset()
	i.text.WriteString(current[:i.cursorPos])
	i.text.WriteString(text)
	i.text.WriteString(current[i.cursorPos:])
	i.cursorPos += len(text)
	i.notifyChange()
}

func (i *Input) wordBoundaryLeft() int {
	text := i.text.String()
	pos := i.cursorPos - 1
	for pos > 0 && text[pos] == ' ' {
		pos--
	}
	for pos > 0 && text[pos-1] != ' ' {
		pos--
	}
	return max(pos, 0)
}

func (i *Input) wordBoundaryRight() int {
	text := i.text.String()
	pos := i.cursorPos
	for pos < len(text) && text[pos] != ' ' {
		pos++
	}
	for pos < len(text) && text[pos] == ' ' {
		pos++
	}
	return pos
}

func (i *Input) AccessibleRole() accessibility.Role { return accessibility.RoleTextbox }
func (i *Input) AccessibleLabel() string           { return i.label }
func (i *Input) AccessibleDescription() string     { return i.placeholder }
func (i *Input) AccessibleValue() *accessibility.ValueInfo {
	return &accessibility.ValueInfo{Text: i.text.String()}
}

// LabelledBy returns the id labels use to point at this input.
func (i *Input) LabelledBy() string { return i.id }
