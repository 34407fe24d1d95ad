package jst

import (
	"github.com/vango-dev/jst/internal/errors"
)

// Sentinel errors for invariant violations. Match them with errors.Is.
var (
	ErrNegativeComponentRefs = errors.New("J020")
	ErrNegativeNodeRefs      = errors.New("J021")
	ErrTornDown              = errors.New("J022")
	ErrReleasedNode          = errors.New("J023")
	ErrNoRender              = errors.New("J001")
)

// retainNode creates an ElementRef item for n.
func (e *Engine) retainNode(n *Node) Content {
	n.refs++
	return Content{Kind: KindElement, Node: n}
}

// retainComponent creates a ComponentRef item for c, rendering c the first
// time it is referenced and re-rendering it when it updates with its parent.
// The returned item is valid whenever its Kind is set, even with an error.
func (e *Engine) retainComponent(c *Component) (Content, error) {
	if c.torn {
		return Content{}, errors.New("J022").WithDetailf("component %s (%d) was torn down", c.Name(), c.id)
	}
	c.refs++
	item := Content{Kind: KindComponent, Comp: c}
	return item, c.refresh(true)
}

// discard releases the reference held by item. parentGone reports that the
// live parent of the item's nodes is being removed, so the nodes need not be
// detached one by one.
func (e *Engine) discard(item *Content, parentGone bool) error {
	switch item.Kind {
	case KindText:
		if item.text != nil {
			if !parentGone {
				e.detach(item.text)
			}
			item.text = nil
		}
		return nil
	case KindElement:
		return e.releaseNode(item.Node, parentGone)
	case KindComponent:
		return e.releaseComponent(item.Comp, parentGone)
	}
	e.warnf("discarding unexpected content", "kind", item.Kind.String())
	return nil
}

func (e *Engine) releaseNode(n *Node, parentGone bool) error {
	n.refs--
	if n.refs < 0 {
		n.refs = 0
		return errors.New("J021").WithDetailf("node %d <%s>", n.id, n.tag)
	}
	if n.refs > 0 {
		return nil
	}
	return e.destroyNode(n, parentGone)
}

// destroyNode releases n's children and its live handle and forgets n.
func (e *Engine) destroyNode(n *Node, parentGone bool) error {
	childrenGone := parentGone
	if n.handle != nil && !n.IsFragment() {
		if !parentGone {
			e.detach(n.handle)
		}
		childrenGone = true
	}

	children := n.children
	n.children = nil
	var firstErr error
	for i := range children {
		if err := e.discard(&children[i], childrenGone); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	n.handle = nil
	n.bound = false
	n.live = nil
	n.form = nil
	n.deleted = true
	e.arena.forgetNode(n)
	return firstErr
}

func (e *Engine) releaseComponent(c *Component, parentGone bool) error {
	c.refs--
	if c.refs < 0 {
		c.refs = 0
		return errors.New("J020").WithDetailf("component %s (%d)", c.Name(), c.id)
	}
	if c.refs > 0 {
		return nil
	}
	return e.teardown(c, parentGone)
}

// teardown runs the unrender hook, deletes c's tree and its CSS.
func (e *Engine) teardown(c *Component, parentGone bool) error {
	if u, ok := c.impl.(Unrenderer); ok {
		u.Unrender()
	}
	var err error
	if c.tree != nil {
		err = e.destroyNode(c.tree, parentGone)
		c.tree = nil
	}
	if e.styles != nil {
		e.styles.RemoveCSS(c)
	}
	c.torn = true
	c.attached = false
	c.container = 0
	c.refs = 0
	e.arena.forgetComponent(c)
	if e.observer != nil {
		e.observer.TornDown(c)
	}
	e.logger.Debug("component torn down", "component", c.Name(), "component_id", c.id)
	return err
}

// dropScratch releases a scratch fragment after reconciliation consumed it.
func (e *Engine) dropScratch(n *Node) error {
	if len(n.children) == 0 {
		n.deleted = true
		e.arena.forgetNode(n)
		return nil
	}
	return e.destroyNode(n, false)
}
