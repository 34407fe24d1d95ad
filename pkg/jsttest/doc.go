// Package jsttest provides testing helpers for jst components.
//
// A Harness wires an engine to a headless memdom document and a style
// registry, and offers assertions on the live markup and on the operations
// applied to it.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := jsttest.New(t)
//	    c := h.Engine.Component(&Counter{})
//	    h.Mount(c)
//	    h.ExpectHTML("<span>0</span>")
//
//	    h.ResetOps()
//	    h.Click("inc")
//	    h.Refresh(c)
//	    h.ExpectChildOps(0)
//	    h.ExpectHTML("<span>1</span>")
//	}
//
// # Render Assertions
//
// For trees that are never bound, the package level helpers serialize the
// logical model:
//
//	jsttest.ExpectContains(t, node, "Welcome")
//	jsttest.ExpectAttribute(t, node, "class", "btn")
package jsttest
