package demo

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/tags"
)

// Todo is a todo list: a header, a form to add entries, the list and a
// footer with counts.
type Todo struct {
	title string
	e     *jst.Engine
	t     tags.Tags

	self   *jst.Component
	header *jst.Component
	list   *todoList
	listC  *jst.Component

	nextID int
	ticks  int
}

// NewTodo builds the todo demo on e.
func NewTodo(e *jst.Engine, title string) *Todo {
	a := &Todo{title: title, e: e, t: tags.New(e), nextID: 1}
	a.self = e.Component(a)
	a.header = e.Component(&header{app: a})
	a.header.UpdateWithParent = true
	a.list = &todoList{app: a}
	a.listC = e.Component(a.list)
	a.listC.UpdateWithParent = true
	return a
}

// Title returns the page title.
func (a *Todo) Title() string { return a.title }

// Component returns the root component.
func (a *Todo) Component() *jst.Component { return a.self }

// Render implements jst.Renderer.
func (a *Todo) Render(e *jst.Engine) any {
	t := a.t
	done := 0
	for _, it := range a.list.items {
		if it.done {
			done++
		}
	}
	return t.Div(tags.ID("-page"),
		a.header,
		t.Form(tags.Name("add"),
			t.Input(tags.Name("title"), tags.ID("-new"), tags.Placeholder("What needs doing?")),
			t.Button(tags.Type("button"), tags.ID("-add"), tags.OnClick(a.submit), "Add"),
		),
		a.listC,
		t.P(tags.Class("-footer"), fmt.Sprintf("%d of %d done", done, len(a.list.items))),
	)
}

// CSSGlobal implements jst.GlobalStyler.
func (a *Todo) CSSGlobal() any {
	return map[string]any{
		"body": map[string]any{
			"backgroundColor": bodyBackground,
			"color":           textOnLight,
			"fontFamily":      "sans-serif",
			"margin$px":       0,
		},
	}
}

// CSSLocal implements jst.LocalStyler.
func (a *Todo) CSSLocal() any {
	return map[string]any{
		"page$i": map[string]any{
			"paddingTop$px": 40,
			"maxWidth$px":   600,
			"margin":        "0 auto",
		},
		"footer$c": map[string]any{
			"color":       mediumPrimary,
			"fontSize$em": 0.9,
		},
	}
}

func (a *Todo) submit() {
	title := a.self.FormValues("add")["title"]
	if title == "" {
		return
	}
	if err := a.Add(title); err != nil {
		a.e.Logger().Error("add todo failed", "error", err)
	}
}

// Add appends an entry.
func (a *Todo) Add(title string) error {
	it := &todoItem{app: a, id: a.nextID, title: title}
	a.nextID++
	it.c = a.e.Component(it)
	a.list.items = append(a.list.items, it)
	return a.self.Refresh()
}

// Toggle flips the done state of the entry with the given id.
func (a *Todo) Toggle(id int) error {
	it := a.list.find(id)
	if it == nil {
		return nil
	}
	it.done = !it.done
	if err := it.c.Refresh(); err != nil {
		return err
	}
	return a.self.Refresh()
}

// Remove deletes the entry with the given id.
func (a *Todo) Remove(id int) error {
	for i, it := range a.list.items {
		if it.id == id {
			a.list.items = append(a.list.items[:i:i], a.list.items[i+1:]...)
			return a.self.Refresh()
		}
	}
	return nil
}

// Move moves the entry at index from to index to.
func (a *Todo) Move(from, to int) error {
	items := a.list.items
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return nil
	}
	it := items[from]
	items = append(items[:from:from], items[from+1:]...)
	items = append(items[:to:to], append([]*todoItem{it}, items[to:]...)...)
	a.list.items = items
	return a.self.Refresh()
}

// Len returns the number of entries.
func (a *Todo) Len() int { return len(a.list.items) }

// Tick cycles through adding, completing, reordering and clearing entries.
func (a *Todo) Tick() (string, error) {
	step := a.ticks % 4
	a.ticks++
	switch step {
	case 0:
		title := "Task " + strconv.Itoa(a.nextID)
		return "add " + title, a.Add(title)
	case 1:
		for _, it := range a.list.items {
			if !it.done {
				return "complete " + it.title, a.Toggle(it.id)
			}
		}
	case 2:
		if n := a.Len(); n > 1 {
			return "move last to front", a.Move(n-1, 0)
		}
	case 3:
		if a.Len() > 5 {
			for _, it := range a.list.items {
				if it.done {
					return "remove " + it.title, a.Remove(it.id)
				}
			}
		}
	}
	return "idle", nil
}

// header renders the title bar.
type header struct {
	app *Todo
}

func (h *header) Render(e *jst.Engine) any {
	t := h.app.t
	return t.Div(tags.ID("-header"),
		t.Div(tags.ID("-headerLeftArea"),
			t.Div(tags.ID("-headerTitle"), tags.Class("-headerItem"), h.app.title),
		),
		t.Div(tags.ID("-headerRightArea"),
			t.Div(tags.ID("-headerCount"), tags.Class("-headerItem"), strconv.Itoa(h.app.Len())),
		),
	)
}

func (h *header) CSSLocal() any {
	return map[string]any{
		"header$i": map[string]any{
			"position":        "fixed",
			"top$px":          0,
			"left$px":         0,
			"right$px":        0,
			"backgroundColor": darkPrimary,
			"fontWeight":      "bold",
			"color":           textOnDark,
			"padding$px":      5,
			"height$px":       18,
			"borderBottom$px": []any{2, "solid", lightSecondary},
		},
		"headerRightArea$i": map[string]any{
			"display": "inline-block",
			"float":   "right",
		},
		"headerLeftArea$i": map[string]any{
			"display": "inline-block",
			"float":   "left",
		},
		"headerItem$c": map[string]any{
			"display":    "inline-block",
			"padding$px": []any{0, 5},
		},
	}
}

// todoList renders the entries.
type todoList struct {
	app   *Todo
	items []*todoItem
}

func (l *todoList) Render(e *jst.Engine) any {
	comps := make([]*jst.Component, len(l.items))
	for i, it := range l.items {
		comps[i] = it.c
	}
	return l.app.t.Ul(tags.Class("-list"), comps)
}

func (l *todoList) find(id int) *todoItem {
	for _, it := range l.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

// todoItem is one entry.
type todoItem struct {
	app   *Todo
	c     *jst.Component
	id    int
	title string
	done  bool
}

func (it *todoItem) Render(e *jst.Engine) any {
	t := it.app.t
	cls := []string{"-item"}
	if it.done {
		cls = append(cls, "-done")
	}
	return t.Li(tags.Class(cls...), tags.Data("id", strconv.Itoa(it.id)),
		t.Input(tags.Type("checkbox"), tags.Checked(it.done), tags.OnChange(func(dom.Event) {
			if err := it.app.Toggle(it.id); err != nil {
				e.Logger().Error("toggle todo failed", "id", it.id, "error", err)
			}
		})),
		t.Span(tags.Class("-title"), it.title),
		t.Button(tags.Class("-remove"), tags.OnClick(func() {
			if err := it.app.Remove(it.id); err != nil {
				e.Logger().Error("remove todo failed", "id", it.id, "error", err)
			}
		}), "x"),
	)
}

func (it *todoItem) CSSLocal() any {
	return map[string]any{
		"item$c": map[string]any{
			"listStyle":       "none",
			"padding$px":      []any{4, 0},
			"borderBottom$px": []any{1, "solid", veryLightPrimary},
		},
		"done$c": map[string]any{
			"textDecoration": "line-through",
			"opacity":        0.6,
		},
	}
}
