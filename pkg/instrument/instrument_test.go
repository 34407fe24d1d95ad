package instrument

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
)

// row renders one list entry.
type row struct{ label string }

func (r *row) Render(e *jst.Engine) any { return e.El("li", r.label) }

// table renders its rows inside a ul.
type table struct{ rows []*jst.Component }

func (t *table) Render(e *jst.Engine) any { return e.El("ul", t.rows) }

// shell renders a child that has no render function.
type shell struct{}

func (shell) Render(e *jst.Engine) any { return e.El("div", e.Component(nil)) }

func newEngine(t *testing.T, o jst.Observer) (*jst.Engine, *memdom.Document) {
	t.Helper()
	doc := memdom.NewDocument()
	e, err := jst.New(doc,
		jst.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		jst.WithObserver(o),
	)
	if err != nil {
		t.Fatalf("jst.New() error: %v", err)
	}
	return e, doc
}

func newTable(e *jst.Engine, labels ...string) (*table, *jst.Component) {
	tb := &table{}
	for _, l := range labels {
		tb.rows = append(tb.rows, e.Component(&row{label: l}))
	}
	return tb, e.Component(tb)
}
