package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/odvcencio/furry-hooks/terminal"
)

// ErrUnknownCommand is returned for script lines with an unknown verb.
var ErrUnknownCommand = errors.New("unknown command")

var namedKeys = map[string]terminal.Key{
	"enter":     terminal.KeyEnter,
	"esc":       terminal.KeyEscape,
	"escape":    terminal.KeyEscape,
	"tab":       terminal.KeyTab,
	"backtab":   terminal.KeyBacktab,
	"backspace": terminal.KeyBackspace,
	"delete":    terminal.KeyDelete,
	"left":      terminal.KeyLeft,
	"right":     terminal.KeyRight,
	"up":        terminal.KeyUp,
	"down":      terminal.KeyDown,
	"home":      terminal.KeyHome,
	"end":       terminal.KeyEnd,
	"space":     terminal.KeyRune,
}

// Run executes a line-oriented script. Blank lines and lines starting with
// '#' are skipped. Verbs:
//
//	press <label>          activate a button
//	click <label>          click a widget
//	focus <label>          focus a widget
//	type <label> = <text>  type text into a textbox
//	key <name|char>...     send keys: enter, tab, esc, ... or single characters
//	wait <duration>        sleep, e.g. wait 50ms
//	expect <text>          wait until text is on screen
//	reject <text>          fail if text is on screen
func (a *Agent) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := a.step(ctx, text); err != nil {
			return fmt.Errorf("line %d: %s: %w", line, text, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func (a *Agent) step(ctx context.Context, text string) error {
	verb, arg, _ := strings.Cut(text, " ")
	arg = strings.TrimSpace(arg)
	switch verb {
	case "press":
		return a.Activate(ctx, arg)
	case "click":
		return a.Click(ctx, arg)
	case "focus":
		return a.Focus(ctx, arg)
	case "type":
		label, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("type needs <label> = <text>")
		}
		return a.Type(ctx, strings.TrimSpace(label), strings.TrimSpace(value))
	case "key":
		for _, name := range strings.Fields(arg) {
			if err := a.key(ctx, name); err != nil {
				return err
			}
		}
		return nil
	case "wait":
		d, err := time.ParseDuration(arg)
		if err != nil {
			return err
		}
		select {
		case <-time.After(d):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	case "expect":
		return a.WaitForText(ctx, arg)
	case "reject":
		if err := a.do(ctx, nil); err != nil {
			return err
		}
		if a.ContainsText(arg) {
			return fmt.Errorf("unexpected text %q on screen", arg)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, verb)
}

func (a *Agent) key(ctx context.Context, name string) error {
	if key, ok := namedKeys[strings.ToLower(name)]; ok {
		if key == terminal.KeyRune {
			return a.PressRune(ctx, ' ')
		}
		return a.Press(ctx, key)
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return a.PressRune(ctx, r)
	}
	return fmt.Errorf("%w key %q", ErrUnknownCommand, name)
}
