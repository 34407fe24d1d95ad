package jst

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/dom/memdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine returns an engine over a fresh memdom document and a
// detached root element to mount into.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *memdom.Document, *memdom.Element) {
	t.Helper()
	doc := memdom.NewDocument()
	root := doc.NewRoot("main")
	e, err := New(doc, append([]Option{WithLogger(quietLogger())}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e, doc, root
}

func mount(t *testing.T, e *Engine, root *memdom.Element, params ...any) *Node {
	t.Helper()
	n, err := e.Mount(root, params...)
	if err != nil {
		t.Fatalf("Mount() error: %v", err)
	}
	return n
}

func refresh(t *testing.T, c *Component) {
	t.Helper()
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
}

func el(h dom.Node) *memdom.Element {
	return h.(*memdom.Element)
}

// item renders one list entry.
type item struct {
	label   string
	renders int
}

func (i *item) Render(e *Engine) any {
	i.renders++
	return e.El("li", i.label)
}

// list renders its components inside a ul.
type list struct {
	items []*Component
}

func (l *list) Render(e *Engine) any {
	return e.El("ul", l.items)
}

func newItems(e *Engine, labels ...string) []*Component {
	out := make([]*Component, len(labels))
	for i, label := range labels {
		out[i] = e.Component(&item{label: label})
	}
	return out
}

// liHandles returns the live li elements under the first ul of root.
func liHandles(t *testing.T, root *memdom.Element) []*memdom.Element {
	t.Helper()
	ul := root.Find(func(x *memdom.Element) bool { return x.TagName() == "ul" })
	if ul == nil {
		t.Fatal("no ul in live tree")
	}
	return ul.Children()
}

// recordingObserver counts engine notifications.
type recordingObserver struct {
	started  []string
	finished []error
	ops      map[dom.Op]int
	torn     []string
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{ops: make(map[dom.Op]int)}
}

func (o *recordingObserver) RefreshStarted(c *Component) func(error) {
	o.started = append(o.started, c.Name())
	return func(err error) { o.finished = append(o.finished, err) }
}

func (o *recordingObserver) Mutated(op dom.Op) { o.ops[op]++ }

func (o *recordingObserver) TornDown(c *Component) { o.torn = append(o.torn, c.Name()) }

func captureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isCode(err error, code string) bool {
	var je *errors.Error
	return stderrors.As(err, &je) && je.Code == code
}
