package demo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/state"
	"github.com/odvcencio/furry-hooks/widgets"
)

const derivedNotes = "The trace shows `recompute` only when `base` changes."

// busyIterations is the fixed amount of work Double burns per call.
const busyIterations = 500000

var sink int

// Double returns 2*b after a deterministic busy loop standing in for an
// expensive computation.
func Double(b int) int {
	acc := 0
	for i := 0; i < busyIterations; i++ {
		acc += i & 1
	}
	sink = acc
	return b * 2
}

// Derived is the derived-value cache section.
type Derived struct {
	log   *zap.Logger
	memo  *state.Memo[int, int]
	inc   *widgets.Button
	dec   *widgets.Button
	value *widgets.Label
	view  *widgets.Section
}

func newDerived(log *zap.Logger, inc, dec *state.Callback) *Derived {
	d := &Derived{log: log, memo: state.NewMemo(Double)}
	d.memo.OnCompute(func(base, doubled int) {
		d.log.Info("recompute", zap.Int("base", base), zap.Int("doubled", doubled))
	})
	d.inc = widgets.NewButton("base +1", inc)
	d.dec = widgets.NewButton("base -1", dec)
	d.value = widgets.NewLabel("")
	d.view = widgets.NewSection("2) Memoized value", widgets.VStack(
		widgets.HStack(d.inc, d.dec, d.value),
		widgets.NewMarkdown(derivedNotes),
	))
	return d
}

// render reads the cached value for base and returns it.
func (d *Derived) render(base int) int {
	doubled := d.memo.Get(base)
	d.value.SetText(fmt.Sprintf("base = %d, doubled (memo) = %d", base, doubled))
	return doubled
}

// Recomputes returns how many times Double ran.
func (d *Derived) Recomputes() int {
	return d.memo.Computations()
}

// Value returns the displayed line.
func (d *Derived) Value() string {
	return d.value.Text()
}

// View returns the section widget.
func (d *Derived) View() *widgets.Section {
	return d.view
}
