// Package tags provides typed element, attribute and event helpers on top
// of jst.Engine.El.
//
//	t := tags.New(engine)
//	t.Ul(tags.Class("todo"),
//	    t.Li("write code"),
//	    t.Button(tags.OnClick(save), "Save"),
//	)
//
// Attribute helpers return jst.Attrs bags and may be mixed freely with
// children. Class accumulates across calls; every other attribute keeps the
// last value given.
package tags
