package jst

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/style"
)

// Renderer produces a component's content. The result is ingested like the
// params of El: nodes, components, scalars, Attrs (applied to nothing and
// ignored), slices and thunks.
type Renderer interface {
	Render(e *Engine) any
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(e *Engine) any

// Render implements Renderer.
func (f RenderFunc) Render(e *Engine) any { return f(e) }

// PostRenderer is notified after a render pass has been applied to the
// render target.
type PostRenderer interface {
	PostRender()
}

// Unrenderer is notified when its component is torn down.
type Unrenderer interface {
	Unrender()
}

// RefSetter receives nodes carrying a "ref" attribute when they are bound.
type RefSetter interface {
	SetRef(name string, n *Node)
}

// Namer names a component type for CSS comments, logs and metrics.
type Namer interface {
	Name() string
}

// GlobalStyler returns unscoped CSS rules.
type GlobalStyler interface {
	CSSGlobal() any
}

// LocalStyler returns CSS rules scoped to every instance of the type.
type LocalStyler interface {
	CSSLocal() any
}

// InstanceStyler returns CSS rules scoped to one instance.
type InstanceStyler interface {
	CSSInstance() any
}

// Component is a stateful unit with its own render function. A component
// goes from unrendered to rendered when it is first included in a tree,
// re-renders on Refresh and is torn down, for good, when its last
// reference is released.
type Component struct {
	id   ComponentID
	eng  *Engine
	impl Renderer

	// UpdateWithParent makes the component re-render whenever a tree that
	// includes it is rendered.
	UpdateWithParent bool

	classID   int
	tree      *Node
	refs      int
	container NodeID
	attached  bool
	rendered  bool
	torn      bool

	named map[string]*Node
	forms map[string]*Form
}

// Component creates a component rendered by impl. impl may be nil and
// supplied later with Fill.
func (e *Engine) Component(impl Renderer) *Component {
	return &Component{
		id:   nextComponentID(),
		eng:  e,
		impl: impl,
	}
}

// Fill creates an ad-hoc component rendered by fn.
func (e *Engine) Fill(fn func(e *Engine) any) *Component {
	c := e.Component(nil)
	if fn != nil {
		c.impl = RenderFunc(fn)
	}
	return c
}

// Fill sets the render function of a component that has not rendered yet.
func (c *Component) Fill(fn func(e *Engine) any) error {
	if fn == nil {
		return errors.New("J002")
	}
	if c.rendered {
		return errors.Newf(errors.CategoryConfig, "component %s (%d) has already rendered", c.Name(), c.id)
	}
	c.impl = RenderFunc(fn)
	c.classID = 0
	return nil
}

// ID returns the component id.
func (c *Component) ID() ComponentID { return c.id }

// Impl returns the value rendering the component.
func (c *Component) Impl() Renderer { return c.impl }

// Engine returns the engine the component belongs to.
func (c *Component) Engine() *Engine { return c.eng }

// Name returns the component type name.
func (c *Component) Name() string {
	if n, ok := c.impl.(Namer); ok {
		return n.Name()
	}
	switch c.impl.(type) {
	case nil, RenderFunc:
		return "Component"
	}
	t := reflect.TypeOf(c.impl)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "Component"
	}
	return t.Name()
}

// ClassID returns the id shared by all components of the same type.
func (c *Component) ClassID() int {
	if c.classID == 0 {
		c.classID = c.eng.classID(c.impl)
	}
	return c.classID
}

// ClassPrefix returns the prefix shared by all components of the same type,
// e.g. "jsto3-".
func (c *Component) ClassPrefix() string {
	return fmt.Sprintf("%s%d-", c.eng.prefix, c.ClassID())
}

// FullPrefix returns the prefix unique to this instance, e.g. "jsto3-i17-".
func (c *Component) FullPrefix() string {
	return fmt.Sprintf("%s%d-i%d-", c.eng.prefix, c.ClassID(), c.id)
}

// Type returns the name and instance prefix, e.g. "Counter-jsto3-i17-".
func (c *Component) Type() string {
	return c.Name() + "-" + c.FullPrefix()
}

// Tree returns the materialized tree, or nil before the first render and
// after teardown.
func (c *Component) Tree() *Node { return c.tree }

// RefCount returns the number of child lists referencing c.
func (c *Component) RefCount() int { return c.refs }

// Attached reports whether the component's tree is bound to the render target.
func (c *Component) Attached() bool { return c.attached }

// TornDown reports whether the component has been torn down.
func (c *Component) TornDown() bool { return c.torn }

// SetRef records n under name. It is called when a node with a "ref"
// attribute is bound in this component's tree.
func (c *Component) SetRef(name string, n *Node) {
	if c.named == nil {
		c.named = make(map[string]*Node)
	}
	c.named[name] = n
	if rs, ok := c.impl.(RefSetter); ok {
		rs.SetRef(name, n)
	}
}

// Ref returns the node recorded under name.
func (c *Component) Ref(name string) *Node {
	n := c.named[name]
	if n == nil || n.deleted {
		return nil
	}
	return n
}

// Refresh re-renders the component and applies the difference to the
// render target. It does nothing for a component that has never rendered.
func (c *Component) Refresh() error {
	return c.eng.run(func() error {
		return c.refresh(false)
	})
}

// Materialize renders the component if it has not rendered yet and holds a
// reference to it, as if it were the root of a tree. Release drops that
// reference.
func (c *Component) Materialize() error {
	return c.eng.run(func() error {
		if c.torn {
			return errors.New("J022").WithDetailf("component %s (%d) was torn down", c.Name(), c.id)
		}
		c.refs++
		return c.refresh(true)
	})
}

// Release drops a reference taken with Materialize.
func (c *Component) Release() error {
	return c.eng.run(func() error {
		return c.eng.releaseComponent(c, false)
	})
}

// refresh renders c. A parent pass renders c the first time and again only
// when UpdateWithParent is set.
func (c *Component) refresh(parentUpdate bool) (err error) {
	e := c.eng
	if c.torn {
		return errors.New("J022").WithDetailf("component %s (%d) was torn down", c.Name(), c.id)
	}
	if !parentUpdate && c.tree == nil {
		return nil
	}
	if c.tree != nil && parentUpdate && !c.UpdateWithParent {
		return nil
	}
	c.pushCSS()
	if c.impl == nil {
		return errors.New("J001").WithDetailf("component %s (%d) has no render function", c.Name(), c.id)
	}

	if done := e.startRefresh(c); done != nil {
		defer func() {
			if r := recover(); r != nil {
				done(errors.New("J040").WithDetailf("%v", r))
				panic(r)
			}
			done(err)
		}()
	}

	out := c.impl.Render(e)
	c.rendered = true

	scratch := e.newFragment(c)
	e.ingest(scratch, []any{out})
	if scratch.err != nil {
		_ = e.destroyNode(scratch, false)
		return scratch.err
	}

	// Hold a reference so that nothing in the pass can tear c down.
	c.refs++
	if c.tree == nil {
		c.tree = scratch
	} else {
		_, err = e.reconcile(c.tree, scratch, true, c, false, 0)
		if dropErr := e.dropScratch(scratch); err == nil {
			err = dropErr
		}
	}
	if relErr := e.releaseComponent(c, false); err == nil {
		err = relErr
	}
	if err != nil || c.torn {
		return err
	}

	if c.attached {
		if err := e.rebindComponent(c); err != nil {
			return err
		}
	}
	if pr, ok := c.impl.(PostRenderer); ok {
		e.enqueue(pr.PostRender)
	}
	return nil
}

// pushCSS hands the component's CSS to the style registry.
func (c *Component) pushCSS() {
	e := c.eng
	if e.styles == nil {
		return
	}
	var (
		p      style.Payload
		styled bool
		err    error
	)
	if s, ok := c.impl.(GlobalStyler); ok {
		styled = true
		if p.Global, err = style.Normalize(s.CSSGlobal()); err != nil {
			e.warnf("skipping malformed global css", "component", c.Name(), "error", err)
		}
	}
	if s, ok := c.impl.(LocalStyler); ok {
		styled = true
		if p.Local, err = style.Normalize(s.CSSLocal()); err != nil {
			e.warnf("skipping malformed local css", "component", c.Name(), "error", err)
		}
	}
	if s, ok := c.impl.(InstanceStyler); ok {
		styled = true
		if p.Instance, err = style.Normalize(s.CSSInstance()); err != nil {
			e.warnf("skipping malformed instance css", "component", c.Name(), "error", err)
		}
	}
	if styled {
		e.styles.UpdateCSS(c, &p)
	}
}

// rebindComponent binds whatever part of c's tree is not live yet.
func (e *Engine) rebindComponent(c *Component) error {
	parentEl := e.liveParent(c.tree)
	if parentEl == nil {
		return nil
	}
	anchor := e.anchorAfter(c)
	_, err := e.bindItems(parentEl, c.tree, anchor, c, c.tree.form)
	return err
}

// anchorAfter returns the first live handle following c in its container.
func (e *Engine) anchorAfter(c *Component) dom.Node {
	container := e.arena.node(c.container)
	if container == nil {
		return nil
	}
	idx := container.indexOf(c)
	if idx < 0 {
		return nil
	}
	return e.anchorAt(container, idx+1, nil)
}
