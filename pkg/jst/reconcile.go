package jst

import (
	"sort"

	"github.com/vango-dev/jst/pkg/dom"
)

// reconcile makes old equivalent to nw, applying the differences to the
// live target when old is live, and reports whether old must be replaced
// wholesale instead. nw is consumed: every item of its child list is either
// released or moved into old, and nw is left empty for the caller to release.
// owner is the component whose tree is being reconciled.
func (e *Engine) reconcile(old, nw *Node, isRoot bool, owner *Component, force bool, depth int) (bool, error) {
	if old == nw {
		return false, nil
	}

	if !isRoot {
		if force || old.opts.ForceUpdate || nw.opts.ForceUpdate {
			return true, nil
		}
		if old.tag != nw.tag || old.ns != nw.ns {
			return true, nil
		}
		old.opts = nw.opts
		old.ref = nw.ref
		e.reconcileAttrs(old, nw)
		e.reconcileFlags(old, nw)
		e.reconcileEvents(old, nw)
	}

	var (
		oi, ni   int
		toDelete []Content
		firstErr error
	)
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

walk:
	for oi < len(old.children) && ni < len(nw.children) {
		o := &old.children[oi]
		n := &nw.children[ni]
		if o.Kind != n.Kind {
			break
		}

		switch o.Kind {
		case KindText:
			if o.Text != n.Text {
				o.Text = n.Text
				if o.text != nil {
					e.setText(o.text, n.Text)
				}
			}

		case KindElement:
			// A distinct node that lives elsewhere is moved by tail insertion.
			if o.Node != n.Node && (n.Node.refs > 1 || n.Node.bound) {
				break walk
			}
			replace, err := e.reconcile(o.Node, n.Node, false, owner, false, depth+1)
			if err != nil {
				return false, err
			}
			if replace {
				break walk
			}
			keep(e.discard(n, false))

		case KindComponent:
			if o.Comp != n.Comp {
				advance, ok, err := e.singleStep(old, nw, oi, ni, owner, &toDelete)
				if err != nil {
					return false, err
				}
				if !ok {
					break walk
				}
				if advance {
					oi++
					ni++
				}
				continue
			}
			keep(e.discard(n, false))

		default:
			e.warnf("skipping unexpected content", "kind", o.Kind.String(), "parent", old.tag, "depth", depth)
			break walk
		}
		oi++
		ni++
	}

	// Tail deletion: everything left in old goes once insertion is done.
	if oi < len(old.children) {
		toDelete = append(toDelete, old.children[oi:]...)
		old.children = old.children[:oi:oi]
	}

	// Tail insertion.
	if ni < len(nw.children) {
		parentEl := e.liveParent(old)
		anchor := e.anchorAt(old, len(old.children), nil)
		for i := ni; i < len(nw.children); i++ {
			old.children = append(old.children, nw.children[i])
			if parentEl == nil {
				continue
			}
			item := &old.children[len(old.children)-1]
			if err := e.place(parentEl, old, item, anchor, owner, old.form); err != nil {
				keep(err)
			}
		}
	}
	nw.children = nil

	for i := range toDelete {
		keep(e.discard(&toDelete[i], false))
	}
	return false, firstErr
}

// singleStep handles one inserted, deleted or substituted component at
// position oi of old and ni of nw. ok is false when the pair is not one of
// those shapes; advance reports whether both cursors must move on.
func (e *Engine) singleStep(old, nw *Node, oi, ni int, owner *Component, toDelete *[]Content) (advance, ok bool, err error) {
	o := old.children[oi]
	n := nw.children[ni]

	var nextOld, nextNew *Component
	if oi+1 < len(old.children) && old.children[oi+1].Kind == KindComponent {
		nextOld = old.children[oi+1].Comp
	}
	if ni+1 < len(nw.children) && nw.children[ni+1].Kind == KindComponent {
		nextNew = nw.children[ni+1].Comp
	}

	switch {
	case nextNew != nil && nextNew == o.Comp:
		// n was inserted before o.
		anchor := e.anchorAt(old, oi, n.Comp)
		old.children = append(old.children, Content{})
		copy(old.children[oi+1:], old.children[oi:])
		old.children[oi] = n
		return true, true, e.transfer(old, oi, anchor, owner)

	case nextOld != nil && nextOld == n.Comp:
		// o was deleted.
		*toDelete = append(*toDelete, o)
		old.children = append(old.children[:oi], old.children[oi+1:]...)
		return false, true, nil

	case nextOld != nil && nextOld == nextNew:
		// o was substituted by n.
		anchor := e.anchorAt(old, oi+1, n.Comp)
		*toDelete = append(*toDelete, o)
		old.children[oi] = n
		return true, true, e.transfer(old, oi, anchor, owner)
	}
	return false, false, nil
}

// transfer places old.children[i], which was just moved in from the new
// tree, into the live target before anchor.
func (e *Engine) transfer(old *Node, i int, anchor dom.Node, owner *Component) error {
	parentEl := e.liveParent(old)
	if parentEl == nil {
		return nil
	}
	return e.place(parentEl, old, &old.children[i], anchor, owner, old.form)
}

func (e *Engine) reconcileAttrs(old, nw *Node) {
	live := old.bound
	var owner *Component
	if live {
		owner = e.arena.component(old.owner)
	}
	for name := range old.attrs {
		if _, ok := nw.attrs[name]; !ok {
			delete(old.attrs, name)
			if live {
				e.removeAttr(old.handle, name)
			}
		}
	}
	for _, name := range sortedAttrNames(nw.attrs) {
		v := nw.attrs[name]
		if cur, ok := old.attrs[name]; ok && cur == v {
			continue
		}
		old.attrs[name] = v
		if live {
			if scoped(name) {
				v = ResolveScope(v, owner)
			}
			e.setAttr(old.handle, name, v)
		}
	}
}

func (e *Engine) reconcileFlags(old, nw *Node) {
	if equalStrings(old.flags, nw.flags) {
		return
	}
	if old.bound {
		for _, flag := range old.flags {
			if !containsString(nw.flags, flag) {
				e.setFlag(old.handle, flag, false)
			}
		}
		for _, flag := range nw.flags {
			if !containsString(old.flags, flag) {
				e.setFlag(old.handle, flag, true)
			}
		}
	}
	old.flags = append(old.flags[:0:0], nw.flags...)
}

// reconcileEvents swaps callbacks in place. Live listeners are only added or
// removed when the set of event names changes.
func (e *Engine) reconcileEvents(old, nw *Node) {
	for name := range old.events {
		if _, ok := nw.events[name]; !ok {
			delete(old.events, name)
			if old.bound {
				e.removeListener(old, name)
			}
		}
	}
	for _, name := range nw.Events() {
		if old.events == nil {
			old.events = make(map[string]func(dom.Event))
		}
		_, had := old.events[name]
		old.events[name] = nw.events[name]
		if !had && old.bound {
			e.addListener(old, name)
		}
	}
}

func sortedAttrNames(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
