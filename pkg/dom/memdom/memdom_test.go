package memdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/jst/pkg/dom"
)

func TestBuildAndSerialize(t *testing.T) {
	doc := NewDocument()
	root := doc.NewRoot("root")

	a := doc.CreateElement("", "child")
	a.InsertBefore(doc.CreateTextNode("a"), nil)
	b := doc.CreateElement("", "child")
	b.InsertBefore(doc.CreateTextNode("b"), nil)

	root.InsertBefore(b, nil)
	root.InsertBefore(a, b)

	want := "<root><child>a</child><child>b</child></root>"
	if got := root.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
	if got := doc.Count(dom.OpInsert); got != 4 {
		t.Errorf("Insert count = %d, want 4", got)
	}
}

func TestInsertMovesNode(t *testing.T) {
	doc := NewDocument()
	left := doc.NewRoot("left")
	right := doc.NewRoot("right")
	n := doc.CreateElement("", "x")

	left.InsertBefore(n, nil)
	right.InsertBefore(n, nil)

	if len(left.Children()) != 0 {
		t.Errorf("left should be empty after move, got %q", left.HTML())
	}
	if n.Parent() != dom.Node(right) {
		t.Error("parent should be right")
	}
}

func TestRemoveDetachedIsNoop(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("", "x")
	doc.ResetOps()

	n.Remove()
	if doc.Count(dom.OpRemove) != 0 {
		t.Error("removing a detached node should not be recorded")
	}
}

func TestAttributesFlagsAndListeners(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("", "input").(*Element)

	el.SetAttribute("type", "checkbox")
	el.SetAttribute("id", "c1")
	el.SetFlag("checked", true)

	if got := el.HTML(); got != `<input id="c1" type="checkbox" checked>` {
		t.Errorf("HTML() = %q", got)
	}
	if !el.Checked() {
		t.Error("Checked() should be true")
	}

	el.SetFlag("checked", false)
	el.RemoveAttribute("id")
	if got := el.HTML(); got != `<input type="checkbox">` {
		t.Errorf("HTML() = %q", got)
	}

	clicks := 0
	l := dom.NewListener(func(dom.Event) { clicks++ })
	el.AddEventListener("click", l)
	el.Dispatch("click", nil)
	el.RemoveEventListener("click", l)
	el.Dispatch("click", nil)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if el.ListenerCount("click") != 0 {
		t.Error("listener should be removed")
	}
}

func TestOpLog(t *testing.T) {
	doc := NewDocument()
	var watched []dom.Op
	doc.Watch(func(r dom.Record) { watched = append(watched, r.Op) })

	root := doc.NewRoot("div")
	txt := doc.CreateTextNode("a")
	root.InsertBefore(txt, nil)
	txt.SetText("b")

	want := []dom.Op{dom.OpCreateText, dom.OpInsert, dom.OpSetText}
	if diff := cmp.Diff(want, watched); diff != "" {
		t.Errorf("watched ops mismatch (-want +got):\n%s", diff)
	}
	if doc.Mutations() != 2 {
		t.Errorf("Mutations() = %d, want 2", doc.Mutations())
	}

	doc.ResetOps()
	if len(doc.Ops()) != 0 || doc.Mutations() != 0 {
		t.Error("ResetOps should clear the log")
	}
}

func TestValues(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("", "input").(*Element)
	el.SetAttribute("value", "initial")
	if el.Value() != "initial" {
		t.Errorf("Value() = %q, want initial", el.Value())
	}
	el.SetValue("typed")
	if el.Value() != "typed" {
		t.Errorf("Value() = %q, want typed", el.Value())
	}
}

func TestFind(t *testing.T) {
	doc := NewDocument()
	root := doc.NewRoot("div")
	a := doc.CreateElement("", "p")
	a.SetAttribute("id", "first")
	b := doc.CreateElement("", "p")
	root.InsertBefore(a, nil)
	root.InsertBefore(b, nil)

	if root.FindByID("first") != a {
		t.Error("FindByID should return the element")
	}
	ps := root.FindAll(func(e *Element) bool { return e.TagName() == "p" })
	if len(ps) != 2 {
		t.Errorf("FindAll() returned %d, want 2", len(ps))
	}
}
