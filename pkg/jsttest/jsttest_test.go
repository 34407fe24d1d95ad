package jsttest_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/jsttest"
)

type counter struct {
	n int
}

func (c *counter) Render(e *jst.Engine) any {
	return e.El("div",
		e.El("span", jst.Attrs{"id": "value"}, strconv.Itoa(c.n)),
		e.El("button", jst.Attrs{"id": "inc", "events": jst.Events{
			"click": func(dom.Event) { c.n++ },
		}}, "+"),
	)
}

func (c *counter) CSSLocal() any {
	return map[string]any{"btn$c": map[string]any{"color": "red"}}
}

func TestHarnessMountAndRefresh(t *testing.T) {
	h := jsttest.New(t)

	impl := &counter{}
	c := h.Engine.Component(impl)
	h.Mount(c)
	h.ExpectHTML(`<div><span id="value">0</span><button id="inc">+</button></div>`)

	h.ResetOps()
	h.Click("inc")
	h.Refresh(c)
	h.ExpectChildOps(0)
	h.ExpectMutations(1)
	h.ExpectContains(`<span id="value">1</span>`)

	if impl.n != 1 {
		t.Errorf("n = %d, want 1", impl.n)
	}
}

func TestHarnessStyles(t *testing.T) {
	h := jsttest.New(t)

	c := h.Engine.Component(&counter{})
	h.Mount(c)
	if !h.Styles.Has(c) {
		t.Fatal("component CSS not registered")
	}
	if css := h.Styles.Text(); !strings.Contains(css, "."+c.ClassPrefix()+"btn") {
		t.Errorf("scoped selector missing from:\n%s", css)
	}
}

func TestHarnessType(t *testing.T) {
	h := jsttest.New(t, jsttest.WithRootTag("section"))

	var got string
	h.Mount(h.Engine.El("input", jst.Attrs{"id": "q", "events": jst.Events{
		"input": func(ev dom.Event) { got, _ = ev.Detail.(string) },
	}}))
	h.Type("q", "hello")

	if got != "hello" {
		t.Errorf("input event detail = %q, want hello", got)
	}
	if h.Root.TagName() != "section" {
		t.Errorf("root tag = %q, want section", h.Root.TagName())
	}
}

func TestRenderAssertions(t *testing.T) {
	h := jsttest.New(t)
	e := h.Engine

	node := e.El("nav", jst.Attrs{"class": "menu"}, e.El("a", jst.Attrs{"href": "/"}, "Home"))
	jsttest.ExpectContains(t, node, "Home")
	jsttest.ExpectNotContains(t, node, "Logout")
	jsttest.ExpectElement(t, node, "a")
	jsttest.ExpectAttribute(t, node, "class", "menu")

	if got := jsttest.RenderToString(node); got != `<nav class="menu"><a href="/">Home</a></nav>` {
		t.Errorf("RenderToString() = %q", got)
	}
}
