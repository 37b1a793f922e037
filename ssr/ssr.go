// Package ssr renders a demo page to static HTML and carries its state to a
// later interactive pass.
//
// The HTML keeps the page's stable ids, so a terminal page restored from the
// embedded payload pairs the same labels with the same inputs.
package ssr

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/demo"
	"github.com/odvcencio/furry-hooks/runtime"
	"github.com/odvcencio/furry-hooks/widgets"
)

// PayloadID is the id of the script element holding the hydration payload.
const PayloadID = "hooks-state"

// Page renders the page body followed by the payload script. The page is
// synced first so state set before mounting is reflected.
func Page(page *demo.Page, payload string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page.Sync()
		hw := &htmlWriter{w: w, md: goldmark.New()}
		hw.raw(`<main class="hooks-demo" data-id-prefix="`)
		hw.text(page.IDs().Prefix())
		hw.raw(`">`)
		for _, child := range page.ChildWidgets() {
			if err := ctx.Err(); err != nil {
				return err
			}
			hw.node(child)
		}
		hw.raw(`</main>`)
		if payload != "" {
			hw.raw(`<script type="application/octet-stream" id="` + PayloadID + `">`)
			hw.text(payload)
			hw.raw(`</script>`)
		}
		return hw.err
	})
}

// Document wraps Page in a complete HTML document.
func Document(title string, page *demo.Page, payload string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>")
		hw.text(title)
		hw.raw("</title></head><body>")
		if hw.err != nil {
			return hw.err
		}
		if err := Page(page, payload).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</body></html>\n")
		return hw.err
	})
}

// htmlWriter keeps the first write error and drops everything after it.
type htmlWriter struct {
	w   io.Writer
	md  goldmark.Markdown
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	if value == "" {
		return
	}
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) node(w runtime.Widget) {
	if h.err != nil || w == nil {
		return
	}
	switch n := w.(type) {
	case *widgets.Section:
		h.raw(`<section`)
		h.attr("aria-label", n.Title())
		h.raw(`><h2>`)
		h.text(n.Title())
		h.raw(`</h2>`)
		h.children(n)
		h.raw(`</section>`)
	case *widgets.Stack:
		h.raw(`<div class="stack">`)
		h.children(n)
		h.raw(`</div>`)
	case *widgets.Field:
		h.raw(`<div class="field">`)
		h.children(n)
		h.raw(`</div>`)
	case *widgets.Button:
		h.raw(`<button type="button">`)
		h.text(n.Label())
		h.raw(`</button>`)
	case *widgets.Input:
		h.raw(`<input type="text"`)
		h.attr("id", n.ID())
		h.attr("aria-label", n.AccessibleLabel())
		h.attr("placeholder", n.Placeholder())
		h.attr("value", n.Text())
		h.raw(`>`)
	case *widgets.Label:
		if n.For() != "" {
			h.raw(`<label`)
			h.attr("for", n.For())
			h.raw(`>`)
			h.text(n.Text())
			h.raw(`</label>`)
			return
		}
		h.raw(`<span>`)
		h.text(n.Text())
		h.raw(`</span>`)
	case *widgets.SignalLabel:
		h.raw(`<p>`)
		h.text(n.Current())
		h.raw(`</p>`)
	case *widgets.Code:
		h.raw(`<code`)
		h.attr("class", "language-"+n.AccessibleDescription())
		h.raw(`>`)
		h.text(n.Source())
		h.raw(`</code>`)
	case *widgets.Markdown:
		h.markdown(n.Source())
	case *widgets.TraceView:
	default:
		if a, ok := w.(accessibility.Accessible); ok && a.AccessibleLabel() != "" {
			h.raw(`<span`)
			h.attr("role", string(a.AccessibleRole()))
			h.raw(`>`)
			h.text(a.AccessibleLabel())
			h.raw(`</span>`)
			return
		}
		h.children(w)
	}
}

func (h *htmlWriter) children(w runtime.Widget) {
	cp, ok := w.(runtime.ChildProvider)
	if !ok {
		return
	}
	for _, child := range cp.ChildWidgets() {
		h.node(child)
	}
}

func (h *htmlWriter) markdown(source string) {
	if h.err != nil {
		return
	}
	if h.md == nil {
		h.md = goldmark.New()
	}
	h.err = h.md.Convert([]byte(source), h.w)
}
