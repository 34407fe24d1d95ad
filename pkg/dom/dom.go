package dom

// Node is a live handle owned by a render target.
type Node interface {
	// TagName returns the lower-case element name, or "#text" for text nodes.
	TagName() string

	// Parent returns the current parent, or nil when detached.
	Parent() Node

	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// SetFlag sets or clears a boolean property such as "checked".
	SetFlag(name string, on bool)

	AddEventListener(event string, l *Listener)
	RemoveEventListener(event string, l *Listener)

	// InsertBefore inserts child before the existing child before. A nil
	// before appends. A child attached elsewhere is moved.
	InsertBefore(child, before Node)

	// Remove detaches the node from its parent. It is a no-op when detached.
	Remove()

	// SetText replaces the content of a text node.
	SetText(text string)
}

// Document creates live nodes.
type Document interface {
	// CreateElement creates an element. An empty ns means the default
	// (HTML) namespace.
	CreateElement(ns, tag string) Node
	CreateTextNode(text string) Node
}

// ValueReader is implemented by nodes that expose form state.
type ValueReader interface {
	Value() string
	Checked() bool
}

// Event is delivered to listeners.
type Event struct {
	Type   string
	Target Node
	Detail any
}

// Listener wraps a callback so that it has a stable identity for removal.
type Listener struct {
	Fn func(Event)
}

// NewListener returns a Listener calling fn.
func NewListener(fn func(Event)) *Listener {
	return &Listener{Fn: fn}
}

// Handle invokes the callback if set.
func (l *Listener) Handle(ev Event) {
	if l != nil && l.Fn != nil {
		l.Fn(ev)
	}
}
