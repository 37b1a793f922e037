// Package accessibility describes widgets semantically so tools can find and
// drive them without reading raw cells.
package accessibility

// Role is the semantic kind of a widget.
type Role string

const (
	RoleNone    Role = ""
	RoleButton  Role = "button"
	RoleTextbox Role = "textbox"
	RoleText    Role = "text"
	RoleGroup   Role = "group"
	RoleDialog  Role = "dialog"
	RoleLog     Role = "log"
)

// ValueInfo carries the current value of an input-like widget.
type ValueInfo struct {
	Text string `json:"text"`
}

// Accessible is implemented by widgets that expose semantics.
type Accessible interface {
	AccessibleRole() Role
	AccessibleLabel() string
	AccessibleDescription() string
	AccessibleValue() *ValueInfo
}

// Labelled is implemented by widgets whose label is owned by another element,
// referenced by that element's stable identifier.
type Labelled interface {
	LabelledBy() string
}
