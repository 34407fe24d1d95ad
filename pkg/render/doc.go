// Package render serializes jst trees to HTML.
//
// The renderer walks the logical model of nodes and components and never
// reads or writes the render target, so it works for trees that were never
// bound as well as for live ones:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// Component fragments are spliced into their parent. Class and id values
// starting with "-" or "--" are expanded with the prefix of the enclosing
// component, as they are when binding.
//
// # Pretty output
//
// A non-zero Indent puts every tag and text item on its own line, indented
// by Indent spaces per level:
//
//	r := render.NewRenderer(render.RendererConfig{Indent: 2})
//
// # Full pages
//
// RenderPage wraps a component in a complete document with a head holding
// the title, meta tags and inline styles:
//
//	err := r.RenderPage(w, render.PageData{Title: "Todo", Body: app})
//
// # Security
//
// All text content and attribute values are escaped. Inline styles and
// scripts in PageData are written verbatim and must be trusted.
package render
