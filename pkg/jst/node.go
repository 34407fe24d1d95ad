package jst

import (
	"sort"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
)

// FragmentTag is the tag of a component's materialized tree. Fragments never
// create a live element; their children are bound into the enclosing parent.
const FragmentTag = "jstobject"

// Options tunes how a node takes part in reconciliation.
type Options struct {
	// ForceUpdate makes reconciliation replace the node instead of patching it.
	ForceUpdate bool

	// Namespace creates the live element in the given namespace.
	Namespace string
}

// Node is an element in a tree. Nodes are created by Engine.El and may be
// referenced from several child lists at once; each reference is counted.
type Node struct {
	id  NodeID
	eng *Engine

	tag   string
	ns    string
	attrs map[string]string
	flags []string

	// Current callbacks by event name. The live target only ever sees the
	// trampolines in live, which read from here.
	events map[string]func(dom.Event)
	live   map[string]*dom.Listener

	children []Content
	opts     Options
	ref      string

	handle dom.Node
	bound  bool
	refs   int

	// Weak links, resolved through the arena.
	owner    ComponentID
	fragment ComponentID

	form    *Form
	deleted bool
	err     error
}

func (e *Engine) newNode(tag string) *Node {
	return &Node{
		id:    nextNodeID(),
		eng:   e,
		tag:   tag,
		attrs: make(map[string]string),
	}
}

// El creates a node with the given tag and ingests params in order.
// Problems with individual params are logged and the param is skipped.
// Errors raised while rendering nested components are reported by Err and
// by whatever operation later includes the node.
func (e *Engine) El(tag string, params ...any) *Node {
	n := e.newNode(tag)
	e.ingest(n, params)
	return n
}

// Wrap returns a node bound to an existing live handle. Content appended to
// the node is bound into the handle.
func (e *Engine) Wrap(h dom.Node) *Node {
	n := e.newNode(h.TagName())
	n.handle = h
	n.bound = true
	e.arena.trackNode(n)
	return n
}

// Mount wraps parent and appends params to it.
func (e *Engine) Mount(parent dom.Node, params ...any) (*Node, error) {
	n := e.Wrap(parent)
	if err := n.Append(params...); err != nil {
		return n, err
	}
	return n, nil
}

func (e *Engine) newFragment(c *Component) *Node {
	n := e.newNode(FragmentTag)
	n.fragment = c.id
	n.owner = c.id
	return n
}

// ID returns the node id.
func (n *Node) ID() NodeID { return n.id }

// Tag returns the element name.
func (n *Node) Tag() string { return n.tag }

// Namespace returns the element namespace, empty for HTML.
func (n *Node) Namespace() string { return n.ns }

// IsFragment reports whether n is a component's materialized tree.
func (n *Node) IsFragment() bool { return n.fragment != 0 }

// Attr returns an attribute value.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Attrs returns a copy of the attributes.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// Flags returns the boolean properties in order.
func (n *Node) Flags() []string {
	return append([]string(nil), n.flags...)
}

// Events returns the names of events with a callback, sorted.
func (n *Node) Events() []string {
	out := make([]string, 0, len(n.events))
	for name := range n.events {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Children returns a copy of the child list.
func (n *Node) Children() []Content {
	return append([]Content(nil), n.children...)
}

// Options returns the node options.
func (n *Node) Options() Options { return n.opts }

// Ref returns the name under which the node is recorded on its owner.
func (n *Node) Ref() string { return n.ref }

// Handle returns the live handle, or nil when unbound.
func (n *Node) Handle() dom.Node {
	if !n.bound {
		return nil
	}
	return n.handle
}

// Bound reports whether the node has been bound to the render target.
func (n *Node) Bound() bool { return n.bound }

// RefCount returns the number of child lists referencing n.
func (n *Node) RefCount() int { return n.refs }

// Deleted reports whether the node's last reference has been released.
func (n *Node) Deleted() bool { return n.deleted }

// Owner returns the component whose tree n was bound in, if it is alive.
func (n *Node) Owner() *Component {
	return n.eng.arena.component(n.owner)
}

// Err returns the first error raised while ingesting n's params.
func (n *Node) Err() error { return n.err }

// Bind returns the live handle for n, creating and populating it on first
// use. Binding again is idempotent: only content that has not been bound yet
// is created.
func (n *Node) Bind(owner *Component, form *Form) (dom.Node, error) {
	var h dom.Node
	err := n.eng.run(func() error {
		var err error
		h, err = n.eng.bind(n, owner, form)
		return err
	})
	return h, err
}

// Append ingests params as new children and binds them if n is live.
func (n *Node) Append(params ...any) error {
	e := n.eng
	return e.run(func() error {
		if n.deleted {
			return errors.New("J023").WithDetailf("node %d <%s> was released", n.id, n.tag)
		}
		n.err = nil
		e.ingest(n, params)
		if n.err != nil {
			return n.err
		}
		return e.rebind(n)
	})
}

// Replace releases all children of n and appends params in their place.
func (n *Node) Replace(params ...any) error {
	e := n.eng
	return e.run(func() error {
		if n.deleted {
			return errors.New("J023").WithDetailf("node %d <%s> was released", n.id, n.tag)
		}
		children := n.children
		n.children = nil
		var firstErr error
		for i := range children {
			if err := e.discard(&children[i], false); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if firstErr != nil {
			return firstErr
		}
		n.err = nil
		e.ingest(n, params)
		if n.err != nil {
			return n.err
		}
		return e.rebind(n)
	})
}

// rebind binds any unbound content of a live node.
func (e *Engine) rebind(n *Node) error {
	if n.IsFragment() {
		c := e.arena.component(n.fragment)
		if c == nil || !c.attached {
			return nil
		}
		return e.rebindComponent(c)
	}
	if !n.bound {
		return nil
	}
	_, err := e.bind(n, e.arena.component(n.owner), n.form)
	return err
}
