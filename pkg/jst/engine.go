package jst

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/style"
)

// DefaultPrefix is the default base of generated scope prefixes.
const DefaultPrefix = "jsto"

// StyleRegistry receives the CSS generated by components.
type StyleRegistry interface {
	UpdateCSS(s style.Scope, p *style.Payload)
	RemoveCSS(s style.Scope)
}

// Observer is notified about engine activity. Implementations must not call
// back into the engine.
type Observer interface {
	// RefreshStarted is called when a component starts rendering. The
	// returned function is called with the outcome.
	RefreshStarted(c *Component) func(err error)

	// Mutated is called for every operation applied to the render target.
	Mutated(op dom.Op)

	// TornDown is called when a component is torn down.
	TornDown(c *Component)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.With("component", "jst")
		}
	}
}

// WithStyles sets the registry that receives component CSS.
func WithStyles(r StyleRegistry) Option {
	return func(e *Engine) {
		e.styles = r
	}
}

// WithObserver sets the engine observer. Use Observers to combine several.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithPrefix sets the base of generated scope prefixes.
func WithPrefix(prefix string) Option {
	return func(e *Engine) {
		if prefix != "" {
			e.prefix = prefix
		}
	}
}

// Engine builds trees and projects them onto a render target.
// An Engine must be confined to one goroutine.
type Engine struct {
	doc      dom.Document
	styles   StyleRegistry
	observer Observer
	logger   *slog.Logger
	prefix   string

	arena    *arena
	classIDs map[reflect.Type]int

	// Post-render notifications queued during the current operation.
	pending []func()
	depth   int
}

// New creates an engine over doc.
func New(doc dom.Document, opts ...Option) (*Engine, error) {
	if doc == nil {
		return nil, errors.New("J005")
	}
	e := &Engine{
		doc:      doc,
		logger:   slog.Default().With("component", "jst"),
		prefix:   DefaultPrefix,
		arena:    newArena(),
		classIDs: make(map[reflect.Type]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MustNew is like New but panics on error.
func MustNew(doc dom.Document, opts ...Option) *Engine {
	e, err := New(doc, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Document returns the render target.
func (e *Engine) Document() dom.Document { return e.doc }

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// Stats reports the number of tracked nodes and components.
func (e *Engine) Stats() Stats {
	return Stats{Nodes: len(e.arena.nodes), Components: len(e.arena.comps)}
}

// classID returns the class id for the concrete type of impl. Ids start at 1
// and are stable for the engine's lifetime.
func (e *Engine) classID(impl Renderer) int {
	t := reflect.TypeOf(impl)
	if id, ok := e.classIDs[t]; ok {
		return id
	}
	id := len(e.classIDs) + 1
	e.classIDs[t] = id
	return id
}

// run executes a public operation. Post-render notifications queued by fn
// and any nested operation are delivered once the outermost one returns.
func (e *Engine) run(fn func() error) error {
	e.depth++
	defer func() {
		e.depth--
		if e.depth == 0 {
			e.drain()
		}
	}()
	return fn()
}

func (e *Engine) enqueue(fn func()) {
	e.pending = append(e.pending, fn)
}

func (e *Engine) drain() {
	// Callbacks may refresh components, which queues more work.
	for len(e.pending) > 0 {
		fn := e.pending[0]
		e.pending = e.pending[1:]
		e.depth++
		fn()
		e.depth--
	}
	e.pending = nil
}

// --- render target operations ---

func (e *Engine) note(op dom.Op) {
	if e.observer != nil {
		e.observer.Mutated(op)
	}
}

func (e *Engine) startRefresh(c *Component) func(error) {
	if e.observer == nil {
		return nil
	}
	return e.observer.RefreshStarted(c)
}

func (e *Engine) createElement(ns, tag string) dom.Node {
	e.note(dom.OpCreateElement)
	return e.doc.CreateElement(ns, tag)
}

func (e *Engine) createText(text string) dom.Node {
	e.note(dom.OpCreateText)
	return e.doc.CreateTextNode(text)
}

func (e *Engine) setAttr(h dom.Node, name, value string) {
	e.note(dom.OpSetAttr)
	h.SetAttribute(name, value)
}

func (e *Engine) removeAttr(h dom.Node, name string) {
	e.note(dom.OpRemoveAttr)
	h.RemoveAttribute(name)
}

func (e *Engine) setFlag(h dom.Node, name string, on bool) {
	if on {
		e.note(dom.OpSetFlag)
	} else {
		e.note(dom.OpClearFlag)
	}
	h.SetFlag(name, on)
}

func (e *Engine) listen(h dom.Node, event string, l *dom.Listener) {
	e.note(dom.OpAddListener)
	h.AddEventListener(event, l)
}

func (e *Engine) unlisten(h dom.Node, event string, l *dom.Listener) {
	e.note(dom.OpRemoveListener)
	h.RemoveEventListener(event, l)
}

func (e *Engine) insert(parent, child, before dom.Node) {
	if child == before {
		return
	}
	e.note(dom.OpInsert)
	parent.InsertBefore(child, before)
}

func (e *Engine) detach(h dom.Node) {
	if h.Parent() == nil {
		return
	}
	e.note(dom.OpRemove)
	h.Remove()
}

func (e *Engine) setText(h dom.Node, text string) {
	e.note(dom.OpSetText)
	h.SetText(text)
}

// warnf logs a non-fatal problem with the input.
func (e *Engine) warnf(msg string, args ...any) {
	e.logger.Warn(msg, args...)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// multiObserver fans out to several observers.
type multiObserver []Observer

// Observers combines observers into one. Nil entries are skipped.
func Observers(obs ...Observer) Observer {
	var out multiObserver
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}

func (m multiObserver) RefreshStarted(c *Component) func(error) {
	done := make([]func(error), 0, len(m))
	for _, o := range m {
		if fn := o.RefreshStarted(c); fn != nil {
			done = append(done, fn)
		}
	}
	return func(err error) {
		for i := len(done) - 1; i >= 0; i-- {
			done[i](err)
		}
	}
}

func (m multiObserver) Mutated(op dom.Op) {
	for _, o := range m {
		o.Mutated(op)
	}
}

func (m multiObserver) TornDown(c *Component) {
	for _, o := range m {
		o.TornDown(c)
	}
}
