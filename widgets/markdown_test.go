package widgets

import (
	"strings"
	"testing"
)

func TestMarkdown_ListItemsAndCodeSpans(t *testing.T) {
	md := NewMarkdown("- `React.memo` skips renders\n- *memo* is **shallow**\n")
	want := "• React.memo skips renders\n• memo is shallow"
	if got := md.PlainText(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMarkdown_ParagraphsJoinSoftBreaks(t *testing.T) {
	md := NewMarkdown("first line\nsame paragraph\n\nsecond")
	want := "first line same paragraph\nsecond"
	if got := md.PlainText(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMarkdown_WrapsWithHangingIndent(t *testing.T) {
	md := NewMarkdown("- one two three four")
	buf := renderWidget(md, 12, 3)
	rows := []string{rowText(buf, 0), rowText(buf, 1), rowText(buf, 2)}
	want := []string{"• one two", "  three four", ""}
	if strings.Join(rows, "|") != strings.Join(want, "|") {
		t.Fatalf("expected rows %q, got %q", want, rows)
	}
	if h := md.Measure(widthOnly(12)).Height; h != 2 {
		t.Fatalf("expected measured height 2, got %d", h)
	}
}
