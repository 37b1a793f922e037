package widgets

import (
	"strings"

	"github.com/odvcencio/furry-hooks/runtime"
)

func rowText(buf *runtime.Buffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

func renderWidget(w runtime.Widget, width, height int) *runtime.Buffer {
	buf := runtime.NewBuffer(width, height)
	w.Layout(runtime.Rect{Width: width, Height: height})
	w.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.Rect{Width: width, Height: height}})
	return buf
}

func widthOnly(width int) runtime.Constraints {
	return runtime.Loose(width, 0)
}
