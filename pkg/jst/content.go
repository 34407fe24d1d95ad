package jst

import "github.com/vango-dev/jst/pkg/dom"

// ContentKind is the variant of a Content item.
type ContentKind uint8

const (
	KindText      ContentKind = iota + 1 // Text value
	KindElement                          // Reference to a Node
	KindComponent                        // Reference to a Component
)

// String returns the string representation of the kind.
func (k ContentKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Content is one entry of a node's child list.
type Content struct {
	Kind ContentKind
	Text string
	Node *Node
	Comp *Component

	// Live text node, set once a Text item is bound.
	text dom.Node
}

// Live reports whether the item has a live handle in the render target.
func (c Content) Live() bool {
	switch c.Kind {
	case KindText:
		return c.text != nil
	case KindElement:
		return c.Node != nil && c.Node.bound
	case KindComponent:
		return c.Comp != nil && c.Comp.attached
	}
	return false
}
