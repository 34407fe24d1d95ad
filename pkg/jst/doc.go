// Package jst is a reconciling UI templating engine.
//
// Application code describes a tree of elements and stateful components;
// the engine projects that description onto a live render target (any
// implementation of dom.Document) and re-projects it whenever a component
// is refreshed, touching only the parts of the target that differ.
//
// # Building trees
//
// Trees are built with Engine.El. Every parameter after the tag is
// classified and ingested in order:
//
//	e.El("ul", jst.Attrs{"class": "-list"},
//	    e.El("li", "first"),
//	    e.El("li", "second", jst.Attrs{"events": jst.Events{"click": onClick}}),
//	)
//
// Scalars become text, *Node values become child elements, *Component values
// become child components and Attrs supply attributes. Nested slices and
// thunks are flattened first (see package flatten).
//
// # Components
//
// A Component wraps a Renderer. Its materialized tree is a fragment: the
// fragment's children are spliced into whatever live element contains the
// component. Calling Refresh re-renders the component and reconciles the
// result against the previous tree:
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Render(e *jst.Engine) any {
//	    return e.El("span", c.n)
//	}
//
//	counter := e.Component(&Counter{})
//	root := e.Wrap(host)
//	root.Append(counter)
//	...
//	counter.Refresh()
//
// Components are reference counted. Each place a component or node appears
// in a tree holds one reference; when the last reference is released the
// component is torn down and its live nodes are removed.
//
// # Scoped class names
//
// In class and id attributes a token starting with "-" is prefixed with the
// owning component's class prefix and a token starting with "--" with its
// instance prefix. The same prefixes scope the CSS returned by the optional
// styling interfaces.
//
// An Engine is not safe for concurrent use.
package jst
