package jst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/jst/pkg/dom/memdom"
)

type loginForm struct{}

func (loginForm) Render(e *Engine) any {
	return e.El("form", Attrs{"name": "login"},
		e.El("input", Attrs{"name": "user", "value": "anon"}),
		e.El("input", Attrs{"name": "remember", "type": "checkbox"}),
		e.El("input", Attrs{"name": "plan", "type": "radio", "value": "free"}),
		e.El("input", Attrs{"name": "plan", "type": "radio", "value": "pro"}),
		e.El("input", Attrs{"name": "news", "type": "checkbox", "value": "weekly"}),
		e.El("div", e.El("textarea", Attrs{"id": "bio"})),
		e.El("button", "send"),
	)
}

func findInput(root *memdom.Element, name, value string) *memdom.Element {
	return root.Find(func(x *memdom.Element) bool {
		n, _ := x.Attr("name")
		if n != name {
			return false
		}
		if value == "" {
			return true
		}
		v, _ := x.Attr("value")
		return v == value
	})
}

func TestFormValues(t *testing.T) {
	e, _, root := newTestEngine(t)

	c := e.Component(loginForm{})
	mount(t, e, root, c)

	f := c.Form("login")
	if f == nil {
		t.Fatal("form not registered")
	}
	if diff := cmp.Diff([]string{"bio", "news", "plan", "remember", "user"}, f.Inputs()); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}

	want := map[string]string{"user": "anon", "remember": "false", "bio": ""}
	if diff := cmp.Diff(want, c.FormValues("login")); diff != "" {
		t.Errorf("initial values mismatch (-want +got):\n%s", diff)
	}

	findInput(root, "user", "").SetValue("bob")
	findInput(root, "remember", "").SetChecked(true)
	findInput(root, "plan", "pro").SetChecked(true)
	findInput(root, "news", "weekly").SetChecked(true)
	root.FindByID("bio").SetValue("hi")

	want = map[string]string{
		"user":     "bob",
		"remember": "true",
		"plan":     "pro",
		"news":     "weekly",
		"bio":      "hi",
	}
	if diff := cmp.Diff(want, c.FormValues("login")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFormsSurviveRefresh(t *testing.T) {
	e, _, root := newTestEngine(t)

	c := e.Component(loginForm{})
	mount(t, e, root, c)
	findInput(root, "user", "").SetValue("bob")
	refresh(t, c)

	if got := c.FormValues("login")["user"]; got != "bob" {
		t.Errorf("user = %q, want bob", got)
	}
	if got := len(c.Form("login").inputs["plan"]); got != 2 {
		t.Errorf("plan inputs = %d, want 2", got)
	}
}

func TestUnnamedFormIsNotRegistered(t *testing.T) {
	e, _, root := newTestEngine(t)

	c := e.Fill(func(e *Engine) any {
		return e.El("form", e.El("input", Attrs{"name": "q"}))
	})
	mount(t, e, root, c)
	if c.FormValues("") != nil {
		t.Error("unnamed form was registered")
	}
}
