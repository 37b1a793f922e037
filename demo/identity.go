package demo

import (
	"go.uber.org/zap"

	"github.com/odvcencio/furry-hooks/ids"
	"github.com/odvcencio/furry-hooks/widgets"
)

const identityNotes = "The trace shows `ids` once with two distinct ids that stay fixed across re-renders."

// Identity is the stable-id section: two labelled inputs whose labels point
// at the inputs' ids.
type Identity struct {
	first  *widgets.Field
	second *widgets.Field
	view   *widgets.Section
}

func newIdentity(log *zap.Logger, alloc *ids.Allocator) *Identity {
	first, second := alloc.Next(), alloc.Next()
	log.Info("allocated", zap.String("email1", first), zap.String("email2", second))

	i := &Identity{
		first:  widgets.NewField("Email (1)", first, "first@example.com"),
		second: widgets.NewField("Email (2)", second, "second@example.com"),
	}
	i.view = widgets.NewSection("4) Stable ids", widgets.VStack(
		widgets.Columns(i.first, i.second),
		widgets.NewMarkdown(identityNotes),
	))
	return i
}

// IDs returns both identifiers in allocation order.
func (i *Identity) IDs() []string {
	return []string{i.first.Input().ID(), i.second.Input().ID()}
}

// Fields returns both labelled inputs.
func (i *Identity) Fields() []*widgets.Field {
	return []*widgets.Field{i.first, i.second}
}

// View returns the section widget.
func (i *Identity) View() *widgets.Section {
	return i.view
}
