package jsttest

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/style"
)

// Harness runs an engine against a memdom document.
type Harness struct {
	T      testing.TB
	Engine *jst.Engine
	Doc    *memdom.Document
	Root   *memdom.Element
	Styles *style.Registry
	Host   *jst.Node
}

type config struct {
	rootTag string
	verbose bool
	opts    []jst.Option
}

// Option configures a Harness.
type Option func(*config)

// WithRootTag sets the tag of the element components are mounted into
// (default: "main").
func WithRootTag(tag string) Option {
	return func(c *config) {
		c.rootTag = tag
	}
}

// WithVerbose forwards engine debug logs to t.Log.
func WithVerbose() Option {
	return func(c *config) {
		c.verbose = true
	}
}

// WithEngineOptions passes extra options to jst.New. They are applied after
// the harness defaults.
func WithEngineOptions(opts ...jst.Option) Option {
	return func(c *config) {
		c.opts = append(c.opts, opts...)
	}
}

// New creates a harness. Engine warnings are always logged through t.Log.
func New(t testing.TB, opts ...Option) *Harness {
	t.Helper()
	cfg := config{rootTag: "main"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: level}))

	doc := memdom.NewDocument()
	styles := style.NewRegistry(logger)
	engineOpts := append([]jst.Option{jst.WithLogger(logger), jst.WithStyles(styles)}, cfg.opts...)
	e, err := jst.New(doc, engineOpts...)
	if err != nil {
		t.Fatalf("jst.New() error: %v", err)
	}

	root := doc.NewRoot(cfg.rootTag)
	return &Harness{
		T:      t,
		Engine: e,
		Doc:    doc,
		Root:   root,
		Styles: styles,
		Host:   e.Wrap(root),
	}
}

// Mount appends params to the root element and fails the test on error.
func (h *Harness) Mount(params ...any) {
	h.T.Helper()
	if err := h.Host.Append(params...); err != nil {
		h.T.Fatalf("Mount() error: %v", err)
	}
}

// Refresh refreshes c and fails the test on error.
func (h *Harness) Refresh(c *jst.Component) {
	h.T.Helper()
	if err := c.Refresh(); err != nil {
		h.T.Fatalf("Refresh(%s) error: %v", c.Name(), err)
	}
}

// HTML returns the live markup inside the root element.
func (h *Harness) HTML() string {
	return h.Root.InnerHTML()
}

// Ops returns the operations recorded since the last reset.
func (h *Harness) Ops() []dom.Record {
	return h.Doc.Ops()
}

// ResetOps clears the operation log.
func (h *Harness) ResetOps() {
	h.Doc.ResetOps()
}

// Element returns the live element with the given id, failing the test when
// there is none.
func (h *Harness) Element(id string) *memdom.Element {
	h.T.Helper()
	el := h.Root.FindByID(id)
	if el == nil {
		h.T.Fatalf("no element with id %q in:\n%s", id, truncate(h.HTML(), 500))
	}
	return el
}

// Click dispatches a click event to the element with the given id.
func (h *Harness) Click(id string) {
	h.T.Helper()
	h.Element(id).Dispatch("click", nil)
}

// Type sets the value of the input with the given id and dispatches an
// input event.
func (h *Harness) Type(id, value string) {
	h.T.Helper()
	el := h.Element(id)
	el.SetValue(value)
	el.Dispatch("input", value)
}

// ExpectHTML asserts the live markup inside the root element.
func (h *Harness) ExpectHTML(want string) {
	h.T.Helper()
	if got := h.HTML(); got != want {
		h.T.Errorf("live HTML mismatch\n got: %s\nwant: %s", got, want)
	}
}

// ExpectContains asserts that the live markup contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.T.Helper()
	if got := h.HTML(); !strings.Contains(got, expected) {
		h.T.Errorf("expected live HTML to contain %q, got:\n%s", expected, truncate(got, 500))
	}
}

// ExpectMutations asserts the number of operations that changed the live
// tree since the last reset.
func (h *Harness) ExpectMutations(want int) {
	h.T.Helper()
	if got := h.Doc.Mutations(); got != want {
		h.T.Errorf("mutations = %d, want %d; ops: %v", got, want, h.Ops())
	}
}

// ExpectChildOps asserts the number of insert and remove operations since
// the last reset.
func (h *Harness) ExpectChildOps(want int) {
	h.T.Helper()
	if got := h.Doc.ChildOps(); got != want {
		h.T.Errorf("child ops = %d, want %d; ops: %v", got, want, h.Ops())
	}
}

// testWriter sends log lines to t.Log.
type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
