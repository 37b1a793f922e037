package agent

import (
	"time"

	"github.com/odvcencio/furry-hooks/accessibility"
	"github.com/odvcencio/furry-hooks/runtime"
)

// Snapshot captures a structured view of the current UI state.
type Snapshot struct {
	Timestamp   time.Time    `json:"timestamp"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	LayerCount  int          `json:"layer_count,omitempty"`
	Text        string       `json:"text,omitempty"`
	Fingerprint uint64       `json:"fingerprint"`
	Widgets     []WidgetInfo `json:"widgets,omitempty"`
	FocusedID   string       `json:"focused_id,omitempty"`
	Focused     *WidgetInfo  `json:"focused,omitempty"`
}

// WidgetInfo describes a widget in the UI tree.
type WidgetInfo struct {
	ID          string             `json:"id"`
	Layer       int                `json:"layer"`
	Role        accessibility.Role `json:"type,omitempty"`
	Label       string             `json:"label,omitempty"`
	Description string             `json:"description,omitempty"`
	Value       string             `json:"value,omitempty"`
	LabelledBy  string             `json:"labelled_by,omitempty"`
	Bounds      runtime.Rect       `json:"bounds"`
	Children    []WidgetInfo       `json:"children,omitempty"`
	Actions     []string           `json:"actions,omitempty"`
	Focusable   bool               `json:"focusable,omitempty"`
	Focused     bool               `json:"focused,omitempty"`
}
