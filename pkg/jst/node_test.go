package jst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/flatten"
)

func TestBasicMaterialization(t *testing.T) {
	e, doc, _ := newTestEngine(t)

	n := e.El("root", e.El("child", "a"), e.El("child", "b"))
	h, err := n.Bind(nil, nil)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	if got, want := el(h).HTML(), "<root><child>a</child><child>b</child></root>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if got := doc.Count(dom.OpCreateElement); got != 3 {
		t.Errorf("CreateElement ops = %d, want 3", got)
	}
	if got := doc.Count(dom.OpCreateText); got != 2 {
		t.Errorf("CreateText ops = %d, want 2", got)
	}
	if got := doc.Count(dom.OpInsert); got != 4 {
		t.Errorf("Insert ops = %d, want 4", got)
	}
}

func TestBindIsIdempotent(t *testing.T) {
	e, doc, _ := newTestEngine(t)

	n := e.El("div", Attrs{"class": "box", "properties": []string{"hidden"}},
		e.El("span", "x", Attrs{"events": Events{"click": func(dom.Event) {}}}),
		"tail",
	)
	first, err := n.Bind(nil, nil)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	doc.ResetOps()

	second, err := n.Bind(nil, nil)
	if err != nil {
		t.Fatalf("second Bind() error: %v", err)
	}
	if first != second {
		t.Error("second Bind() returned a different handle")
	}
	if ops := doc.Ops(); len(ops) != 0 {
		t.Errorf("second Bind() applied %d ops, want 0: %v", len(ops), ops)
	}
}

func TestBindAppliesAttrsFlagsAndListeners(t *testing.T) {
	e, _, _ := newTestEngine(t)

	clicks := 0
	n := e.El("input",
		Attrs{
			"type":       "checkbox",
			"title":      "",
			"properties": []string{"checked", "disabled"},
			"events":     Events{"click": func(dom.Event) { clicks++ }},
		},
	)
	h, err := n.Bind(nil, nil)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	live := el(h)

	if diff := cmp.Diff(map[string]string{"type": "checkbox"}, live.Attrs()); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"checked", "disabled"}, live.Flags()); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
	live.Dispatch("click", nil)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestParamClassification(t *testing.T) {
	var logs bytes.Buffer
	e, _, _ := newTestEngine(t, WithLogger(captureLogger(&logs)))

	child := e.El("b")
	n := e.El("p",
		"text", 42, 1.5, true, nil,
		[]any{"nested", []string{"deep"}},
		flatten.Thunk(func() any { return []any{"lazy"} }),
		child,
		struct{}{},
		Attrs{"cn": "extra", "class": "base"},
	)

	var got []string
	for _, c := range n.Children() {
		switch c.Kind {
		case KindText:
			got = append(got, c.Text)
		case KindElement:
			got = append(got, "<"+c.Node.Tag()+">")
		}
	}
	want := []string{"text", "42", "1.5", "true", "nested", "deep", "lazy", "<b>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if v, _ := n.Attr("class"); v != "base extra" {
		t.Errorf("class = %q, want %q", v, "base extra")
	}
	if child.RefCount() != 1 {
		t.Errorf("child refcount = %d, want 1", child.RefCount())
	}
	if !strings.Contains(logs.String(), "skipping unknown param") {
		t.Errorf("expected a warning for the unknown param, got logs:\n%s", logs.String())
	}
}

func TestWrapHostHandleAsChild(t *testing.T) {
	e, doc, root := newTestEngine(t)

	host := doc.NewRoot("canvas")
	mount(t, e, root, e.El("div", host))

	if got, want := root.HTML(), "<main><div><canvas></canvas></div></main>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestAppendAndReplace(t *testing.T) {
	e, doc, root := newTestEngine(t)

	n := mount(t, e, root, "a")
	if err := n.Append(e.El("i", "b")); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if got, want := root.InnerHTML(), "a<i>b</i>"; got != want {
		t.Errorf("after Append InnerHTML() = %q, want %q", got, want)
	}

	doc.ResetOps()
	if err := n.Replace("c"); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if got, want := root.InnerHTML(), "c"; got != want {
		t.Errorf("after Replace InnerHTML() = %q, want %q", got, want)
	}
	if got := doc.Count(dom.OpRemove); got != 2 {
		t.Errorf("Remove ops = %d, want 2", got)
	}
}

func TestNamespaceOption(t *testing.T) {
	e, _, _ := newTestEngine(t)

	n := e.El("svg", Attrs{"jstoptions": Options{Namespace: "http://www.w3.org/2000/svg"}})
	h, err := n.Bind(nil, nil)
	if err != nil {
		t.Fatalf("Bind() error: %v", err)
	}
	if got := el(h).Namespace(); got != "http://www.w3.org/2000/svg" {
		t.Errorf("Namespace() = %q", got)
	}
}

func TestReleasedNodeIsSkipped(t *testing.T) {
	var logs bytes.Buffer
	e, _, root := newTestEngine(t, WithLogger(captureLogger(&logs)))

	gone := e.El("span")
	host := mount(t, e, root, gone)
	if err := host.Replace(); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}
	if !gone.Deleted() {
		t.Fatal("expected node to be deleted after its last reference was released")
	}

	n := e.El("div", gone)
	if len(n.Children()) != 0 {
		t.Errorf("released node was ingested")
	}
	if !strings.Contains(logs.String(), "skipping released node") {
		t.Errorf("expected a warning, got logs:\n%s", logs.String())
	}
}
