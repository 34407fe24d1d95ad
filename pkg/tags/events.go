package tags

import (
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/jst"
)

// On registers fn for the named event.
func On(name string, fn func(dom.Event)) jst.Attrs {
	return jst.Attrs{"events": jst.Events{name: fn}}
}

func event(name string, fn func()) jst.Attrs {
	if fn == nil {
		return nil
	}
	return On(name, func(dom.Event) { fn() })
}

// Mouse events

func OnClick(fn func()) jst.Attrs      { return event("click", fn) }
func OnDblClick(fn func()) jst.Attrs   { return event("dblclick", fn) }
func OnMouseEnter(fn func()) jst.Attrs { return event("mouseenter", fn) }
func OnMouseLeave(fn func()) jst.Attrs { return event("mouseleave", fn) }

// Keyboard events

func OnKeyDown(fn func(dom.Event)) jst.Attrs { return On("keydown", fn) }
func OnKeyUp(fn func(dom.Event)) jst.Attrs   { return On("keyup", fn) }

// Form events

func OnInput(fn func(dom.Event)) jst.Attrs  { return On("input", fn) }
func OnChange(fn func(dom.Event)) jst.Attrs { return On("change", fn) }
func OnSubmit(fn func()) jst.Attrs          { return event("submit", fn) }
func OnFocus(fn func()) jst.Attrs           { return event("focus", fn) }
func OnBlur(fn func()) jst.Attrs            { return event("blur", fn) }
