package tags

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
)

func newTags(t *testing.T) (Tags, *memdom.Element) {
	t.Helper()
	doc := memdom.NewDocument()
	e, err := jst.New(doc, jst.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("jst.New() error: %v", err)
	}
	return New(e), doc.NewRoot("main")
}

func TestElements(t *testing.T) {
	tg, root := newTags(t)

	tests := []struct {
		name string
		node *jst.Node
		want string
	}{
		{"div", tg.Div("x"), "div"},
		{"ul", tg.Ul(tg.Li("a")), "ul"},
		{"input", tg.Input(Type("text")), "input"},
		{"custom", tg.El("my-widget"), "my-widget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Tag(); got != tt.want {
				t.Errorf("Tag() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := tg.Engine().Mount(root, tg.Ul(tg.Li("a"), tg.Li("b"))); err != nil {
		t.Fatalf("Mount() error: %v", err)
	}
	if got, want := root.HTML(), "<main><ul><li>a</li><li>b</li></ul></main>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestClassAccumulates(t *testing.T) {
	tg, _ := newTags(t)

	n := tg.Span(Class("a", "b"), Class("c"), ID("x"), ID("y"))
	if got, _ := n.Attr("class"); got != "a b c" {
		t.Errorf("class = %q, want %q", got, "a b c")
	}
	if got, _ := n.Attr("id"); got != "y" {
		t.Errorf("id = %q, want %q", got, "y")
	}
}

func TestPropsAndConditionalHelpers(t *testing.T) {
	tg, _ := newTags(t)

	n := tg.Input(Type("checkbox"), Checked(true), Disabled(false), Required())
	if diff := cmp.Diff([]string{"checked", "required"}, n.Flags()); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
	if got, _ := tg.Td(Colspan(3)).Attr("colspan"); got != "3" {
		t.Errorf("colspan = %q", got)
	}
}

func TestEvents(t *testing.T) {
	tg, root := newTags(t)

	clicks := 0
	var typed string
	btn := tg.Button(OnClick(func() { clicks++ }), "go")
	input := tg.Input(Name("q"), OnInput(func(ev dom.Event) { typed = ev.Type }))
	if _, err := tg.Engine().Mount(root, btn, input); err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	if diff := cmp.Diff([]string{"click"}, btn.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	btn.Handle().(*memdom.Element).Dispatch("click", nil)
	input.Handle().(*memdom.Element).Dispatch("input", nil)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if typed != "input" {
		t.Errorf("event type = %q, want input", typed)
	}
	if OnClick(nil) != nil {
		t.Error("OnClick(nil) should add nothing")
	}
}

func TestSVGNamespace(t *testing.T) {
	tg, _ := newTags(t)

	if got := tg.SVG().Namespace(); got != SVGNamespace {
		t.Errorf("Namespace() = %q, want %q", got, SVGNamespace)
	}
}

func TestForceUpdate(t *testing.T) {
	tg, _ := newTags(t)

	if !tg.Div(ForceUpdate()).Options().ForceUpdate {
		t.Error("ForceUpdate not set")
	}
}
