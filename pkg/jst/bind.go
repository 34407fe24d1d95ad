package jst

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
)

// scopeTokenRe matches "-" or "--" at the start of a whitespace separated token.
var scopeTokenRe = regexp.MustCompile(`(^|\s)(--?)`)

// ResolveScope expands scoped tokens in a class or id value: a leading "--"
// becomes c's instance prefix and a leading "-" its class prefix. Values are
// returned unchanged when c is nil.
func ResolveScope(value string, c *Component) string {
	if c == nil || !strings.Contains(value, "-") {
		return value
	}
	var b strings.Builder
	last := 0
	for _, m := range scopeTokenRe.FindAllStringSubmatchIndex(value, -1) {
		b.WriteString(value[last:m[4]])
		if m[5]-m[4] == 2 {
			b.WriteString(c.FullPrefix())
		} else {
			b.WriteString(c.ClassPrefix())
		}
		last = m[5]
	}
	b.WriteString(value[last:])
	return b.String()
}

func scoped(name string) bool {
	return name == "class" || name == "id"
}

func isInput(tag string) bool {
	return tag == "input" || tag == "textarea" || tag == "select"
}

// bind returns n's live handle, creating it on first use, and binds any
// unbound children into it.
func (e *Engine) bind(n *Node, owner *Component, form *Form) (dom.Node, error) {
	if n.deleted {
		return nil, errors.New("J023").WithDetailf("node %d <%s> was released", n.id, n.tag)
	}
	if n.IsFragment() {
		return nil, errors.Newf(errors.CategoryInvariant, "fragment %d cannot be bound on its own", n.id)
	}

	if n.handle == nil || !n.bound {
		if owner != nil {
			n.owner = owner.id
			e.arena.trackComponent(owner)
		}
		if n.ref != "" && owner != nil {
			owner.SetRef(n.ref, n)
		}
		switch {
		case n.tag == "form" && owner != nil:
			if f := owner.AddForm(n); f != nil {
				form = f
			}
		case form != nil && isInput(n.tag):
			form.AddInput(n)
		}
		n.form = form

		if n.handle == nil {
			n.handle = e.createElement(n.ns, n.tag)
		}
		e.applyLive(n, owner)
		n.bound = true
		e.arena.trackNode(n)
	}

	if _, err := e.bindItems(n.handle, n, nil, e.arena.component(n.owner), n.form); err != nil {
		return n.handle, err
	}
	return n.handle, nil
}

// applyLive sets n's attributes, flags and listeners on its handle.
func (e *Engine) applyLive(n *Node, owner *Component) {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := n.attrs[k]
		if scoped(k) {
			v = ResolveScope(v, owner)
		}
		e.setAttr(n.handle, k, v)
	}
	for _, flag := range n.flags {
		e.setFlag(n.handle, flag, true)
	}
	for _, name := range n.Events() {
		e.addListener(n, name)
	}
}

// addListener registers a trampoline for event name. The trampoline looks up
// the current callback, so replacing a callback needs no live operation.
func (e *Engine) addListener(n *Node, name string) {
	if n.live == nil {
		n.live = make(map[string]*dom.Listener)
	}
	if _, ok := n.live[name]; ok {
		return
	}
	l := dom.NewListener(func(ev dom.Event) {
		if fn := n.events[name]; fn != nil {
			fn(ev)
		}
	})
	n.live[name] = l
	e.listen(n.handle, name, l)
}

func (e *Engine) removeListener(n *Node, name string) {
	l, ok := n.live[name]
	if !ok {
		return
	}
	delete(n.live, name)
	e.unlisten(n.handle, name, l)
}

// bindItems binds c's children into parentEl, last to first, each inserted
// before the previously bound sibling, the last one before anchor. It returns
// the first live handle of c's children, or anchor when there is none.
func (e *Engine) bindItems(parentEl dom.Node, c *Node, anchor dom.Node, owner *Component, form *Form) (dom.Node, error) {
	for i := len(c.children) - 1; i >= 0; i-- {
		item := &c.children[i]
		switch item.Kind {
		case KindText:
			if item.text == nil {
				item.text = e.createText(item.Text)
				e.insert(parentEl, item.text, anchor)
			} else if item.text.Parent() != parentEl {
				e.insert(parentEl, item.text, anchor)
			}
			anchor = item.text

		case KindElement:
			h, err := e.bind(item.Node, owner, form)
			if err != nil {
				return anchor, err
			}
			if h.Parent() != parentEl {
				e.insert(parentEl, h, anchor)
			}
			anchor = h

		case KindComponent:
			comp := item.Comp
			if comp.tree == nil {
				e.warnf("skipping unrendered component", "component", comp.Name(), "component_id", comp.id)
				continue
			}
			comp.container = c.id
			comp.attached = true
			e.arena.trackComponent(comp)
			e.arena.trackNode(c)
			comp.tree.form = form
			first, err := e.bindItems(parentEl, comp.tree, anchor, comp, form)
			if err != nil {
				return anchor, err
			}
			anchor = first

		default:
			e.warnf("skipping unexpected content", "kind", item.Kind.String(), "parent", c.tag)
		}
	}
	return anchor, nil
}

// place binds item, which sits in container's child list, and inserts its
// live nodes into parentEl before anchor. Live nodes are moved.
func (e *Engine) place(parentEl dom.Node, container *Node, item *Content, anchor dom.Node, owner *Component, form *Form) error {
	switch item.Kind {
	case KindText:
		if item.text == nil {
			item.text = e.createText(item.Text)
		}
		e.insert(parentEl, item.text, anchor)

	case KindElement:
		h, err := e.bind(item.Node, owner, form)
		if err != nil {
			return err
		}
		e.insert(parentEl, h, anchor)

	case KindComponent:
		comp := item.Comp
		if comp.tree == nil {
			e.warnf("skipping unrendered component", "component", comp.Name(), "component_id", comp.id)
			return nil
		}
		comp.container = container.id
		comp.attached = true
		e.arena.trackComponent(comp)
		e.arena.trackNode(container)
		comp.tree.form = form
		for i := range comp.tree.children {
			if err := e.place(parentEl, comp.tree, &comp.tree.children[i], anchor, comp, form); err != nil {
				return err
			}
		}

	default:
		e.warnf("skipping unexpected content", "kind", item.Kind.String(), "parent", container.tag)
	}
	return nil
}

// liveParent returns the live element that n's children are bound into, or
// nil when n is not live.
func (e *Engine) liveParent(n *Node) dom.Node {
	for n != nil {
		if !n.IsFragment() {
			if n.bound {
				return n.handle
			}
			return nil
		}
		c := e.arena.component(n.fragment)
		if c == nil || !c.attached {
			return nil
		}
		n = e.arena.node(c.container)
	}
	return nil
}

// anchorAt returns the first live handle belonging to n's children at index
// i or later, ignoring the nodes of skip. Past the end of a fragment the
// search continues after the component in its container. Nil means append.
func (e *Engine) anchorAt(n *Node, i int, skip *Component) dom.Node {
	for n != nil {
		for j := i; j < len(n.children); j++ {
			if skip != nil && n.children[j].Kind == KindComponent && n.children[j].Comp == skip {
				continue
			}
			if h := e.firstHandle(&n.children[j]); h != nil {
				return h
			}
		}
		if !n.IsFragment() {
			return nil
		}
		c := e.arena.component(n.fragment)
		if c == nil || !c.attached {
			return nil
		}
		container := e.arena.node(c.container)
		if container == nil {
			return nil
		}
		idx := container.indexOf(c)
		if idx < 0 {
			return nil
		}
		n, i = container, idx+1
	}
	return nil
}

// firstHandle returns the first live handle of item.
func (e *Engine) firstHandle(item *Content) dom.Node {
	switch item.Kind {
	case KindText:
		return item.text
	case KindElement:
		if item.Node.bound {
			return item.Node.handle
		}
	case KindComponent:
		c := item.Comp
		if c.tree == nil || !c.attached {
			return nil
		}
		for i := range c.tree.children {
			if h := e.firstHandle(&c.tree.children[i]); h != nil {
				return h
			}
		}
	}
	return nil
}

func (n *Node) indexOf(c *Component) int {
	for i, item := range n.children {
		if item.Kind == KindComponent && item.Comp == c {
			return i
		}
	}
	return -1
}
