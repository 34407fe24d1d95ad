// Package memdom is a headless, in-memory render target.
//
// It implements dom.Document and dom.Node with plain Go values and records
// every operation applied to it, which makes it the backend of choice for
// tests (operation counting), server-side rendering and the CLI.
package memdom

import (
	"sort"
	"strings"

	"github.com/vango-dev/jst/pkg/dom"
)

// Document is an in-memory render target. It is not safe for concurrent use.
type Document struct {
	records  []dom.Record
	counts   map[dom.Op]int
	watchers []func(dom.Record)
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{counts: make(map[dom.Op]int)}
}

// Element is a node of a Document. Text nodes are Elements whose TagName is
// "#text".
type Element struct {
	doc       *Document
	tag       string
	ns        string
	text      string
	isText    bool
	attrs     map[string]string
	flags     map[string]bool
	listeners map[string][]*dom.Listener
	parent    *Element
	children  []*Element
	value     string
	hasValue  bool
}

var (
	_ dom.Document    = (*Document)(nil)
	_ dom.Node        = (*Element)(nil)
	_ dom.ValueReader = (*Element)(nil)
)

// CreateElement implements dom.Document.
func (d *Document) CreateElement(ns, tag string) dom.Node {
	d.record(dom.Record{Op: dom.OpCreateElement, Tag: tag})
	return &Element{
		doc:       d,
		tag:       strings.ToLower(tag),
		ns:        ns,
		attrs:     make(map[string]string),
		flags:     make(map[string]bool),
		listeners: make(map[string][]*dom.Listener),
	}
}

// CreateTextNode implements dom.Document.
func (d *Document) CreateTextNode(text string) dom.Node {
	d.record(dom.Record{Op: dom.OpCreateText, Value: text})
	return &Element{doc: d, tag: "#text", text: text, isText: true}
}

// NewRoot creates a detached element to mount trees into. Its creation is
// not recorded.
func (d *Document) NewRoot(tag string) *Element {
	return &Element{
		doc:       d,
		tag:       strings.ToLower(tag),
		attrs:     make(map[string]string),
		flags:     make(map[string]bool),
		listeners: make(map[string][]*dom.Listener),
	}
}

// Watch registers fn to be called for every recorded operation.
func (d *Document) Watch(fn func(dom.Record)) {
	d.watchers = append(d.watchers, fn)
}

func (d *Document) record(r dom.Record) {
	d.records = append(d.records, r)
	d.counts[r.Op]++
	for _, w := range d.watchers {
		w(r)
	}
}

// Ops returns a copy of the recorded operations since the last reset.
func (d *Document) Ops() []dom.Record {
	out := make([]dom.Record, len(d.records))
	copy(out, d.records)
	return out
}

// Count returns how many times op was recorded since the last reset.
func (d *Document) Count(op dom.Op) int {
	return d.counts[op]
}

// Mutations returns the number of operations that changed existing nodes.
func (d *Document) Mutations() int {
	n := 0
	for op, c := range d.counts {
		if op.IsMutation() {
			n += c
		}
	}
	return n
}

// ChildOps returns the number of insert and remove operations.
func (d *Document) ChildOps() int {
	return d.counts[dom.OpInsert] + d.counts[dom.OpRemove]
}

// ResetOps clears the operation log and counters.
func (d *Document) ResetOps() {
	d.records = nil
	d.counts = make(map[dom.Op]int)
}

// TagName implements dom.Node.
func (e *Element) TagName() string { return e.tag }

// Namespace returns the element namespace, empty for HTML.
func (e *Element) Namespace() string { return e.ns }

// Parent implements dom.Node.
func (e *Element) Parent() dom.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// SetAttribute implements dom.Node.
func (e *Element) SetAttribute(name, value string) {
	e.doc.record(dom.Record{Op: dom.OpSetAttr, Tag: e.tag, Key: name, Value: value})
	e.attrs[name] = value
	if name == "value" && !e.hasValue {
		e.value = value
	}
}

// RemoveAttribute implements dom.Node.
func (e *Element) RemoveAttribute(name string) {
	e.doc.record(dom.Record{Op: dom.OpRemoveAttr, Tag: e.tag, Key: name})
	delete(e.attrs, name)
}

// SetFlag implements dom.Node.
func (e *Element) SetFlag(name string, on bool) {
	if on {
		e.doc.record(dom.Record{Op: dom.OpSetFlag, Tag: e.tag, Key: name})
		e.flags[name] = true
		return
	}
	e.doc.record(dom.Record{Op: dom.OpClearFlag, Tag: e.tag, Key: name})
	delete(e.flags, name)
}

// AddEventListener implements dom.Node.
func (e *Element) AddEventListener(event string, l *dom.Listener) {
	e.doc.record(dom.Record{Op: dom.OpAddListener, Tag: e.tag, Key: event})
	e.listeners[event] = append(e.listeners[event], l)
}

// RemoveEventListener implements dom.Node.
func (e *Element) RemoveEventListener(event string, l *dom.Listener) {
	e.doc.record(dom.Record{Op: dom.OpRemoveListener, Tag: e.tag, Key: event})
	list := e.listeners[event]
	for i, existing := range list {
		if existing == l {
			e.listeners[event] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.listeners[event]) == 0 {
		delete(e.listeners, event)
	}
}

// InsertBefore implements dom.Node. An anchor that is not a child of e is
// treated as nil.
func (e *Element) InsertBefore(child, before dom.Node) {
	c := child.(*Element)
	c.detach()

	idx := len(e.children)
	if b, ok := before.(*Element); ok && b != nil {
		for i, existing := range e.children {
			if existing == b {
				idx = i
				break
			}
		}
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = c
	c.parent = e

	e.doc.record(dom.Record{Op: dom.OpInsert, Tag: e.tag, Key: c.tag})
}

// Remove implements dom.Node.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	e.doc.record(dom.Record{Op: dom.OpRemove, Tag: e.parent.tag, Key: e.tag})
	e.detach()
}

func (e *Element) detach() {
	p := e.parent
	if p == nil {
		return
	}
	for i, existing := range p.children {
		if existing == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// SetText implements dom.Node.
func (e *Element) SetText(text string) {
	e.doc.record(dom.Record{Op: dom.OpSetText, Tag: e.tag, Value: text})
	e.text = text
}

// Text returns the content of a text node.
func (e *Element) Text() string { return e.text }

// IsText reports whether e is a text node.
func (e *Element) IsText() bool { return e.isText }

// Children returns the live children of e.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns a copy of the attributes.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// Flag reports whether a boolean property is set.
func (e *Element) Flag(name string) bool { return e.flags[name] }

// Flags returns the set boolean properties in sorted order.
func (e *Element) Flags() []string {
	out := make([]string, 0, len(e.flags))
	for name := range e.flags {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ListenerCount returns how many listeners are registered for event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch delivers an event of the given type to e's listeners.
func (e *Element) Dispatch(eventType string, detail any) {
	ev := dom.Event{Type: eventType, Target: e, Detail: detail}
	for _, l := range append([]*dom.Listener(nil), e.listeners[eventType]...) {
		l.Handle(ev)
	}
}

// SetValue sets the user-entered value of a form control without recording
// an operation, as typing into a field would.
func (e *Element) SetValue(v string) {
	e.value = v
	e.hasValue = true
}

// Value implements dom.ValueReader.
func (e *Element) Value() string {
	if e.hasValue {
		return e.value
	}
	return e.attrs["value"]
}

// Checked implements dom.ValueReader.
func (e *Element) Checked() bool { return e.flags["checked"] }

// SetChecked toggles the checked state without recording an operation.
func (e *Element) SetChecked(on bool) {
	if on {
		e.flags["checked"] = true
	} else {
		delete(e.flags, "checked")
	}
}

// FindByID returns the first element in e's subtree with the given id.
func (e *Element) FindByID(id string) *Element {
	return e.Find(func(el *Element) bool { return el.attrs["id"] == id })
}

// Find returns the first element in e's subtree, e included, matching fn.
func (e *Element) Find(fn func(*Element) bool) *Element {
	if !e.isText && fn(e) {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(fn); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element in e's subtree, e included, matching fn.
func (e *Element) FindAll(fn func(*Element) bool) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if !el.isText && fn(el) {
			out = append(out, el)
		}
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(e)
	return out
}
