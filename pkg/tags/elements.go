package tags

import "github.com/vango-dev/jst/pkg/jst"

// Tags builds nodes on one engine.
type Tags struct {
	e *jst.Engine
}

// New returns element helpers that build nodes with e.
func New(e *jst.Engine) Tags {
	return Tags{e: e}
}

// Engine returns the engine nodes are built with.
func (t Tags) Engine() *jst.Engine { return t.e }

// El creates an element with an arbitrary tag.
func (t Tags) El(tag string, args ...any) *jst.Node { return t.e.El(tag, args...) }

// Document structure

func (t Tags) Header(args ...any) *jst.Node  { return t.e.El("header", args...) }
func (t Tags) Footer(args ...any) *jst.Node  { return t.e.El("footer", args...) }
func (t Tags) Main(args ...any) *jst.Node    { return t.e.El("main", args...) }
func (t Tags) Nav(args ...any) *jst.Node     { return t.e.El("nav", args...) }
func (t Tags) Section(args ...any) *jst.Node { return t.e.El("section", args...) }
func (t Tags) Article(args ...any) *jst.Node { return t.e.El("article", args...) }
func (t Tags) Aside(args ...any) *jst.Node   { return t.e.El("aside", args...) }

// Headings

func (t Tags) H1(args ...any) *jst.Node { return t.e.El("h1", args...) }
func (t Tags) H2(args ...any) *jst.Node { return t.e.El("h2", args...) }
func (t Tags) H3(args ...any) *jst.Node { return t.e.El("h3", args...) }
func (t Tags) H4(args ...any) *jst.Node { return t.e.El("h4", args...) }

// Text content

func (t Tags) Div(args ...any) *jst.Node        { return t.e.El("div", args...) }
func (t Tags) P(args ...any) *jst.Node          { return t.e.El("p", args...) }
func (t Tags) Span(args ...any) *jst.Node       { return t.e.El("span", args...) }
func (t Tags) A(args ...any) *jst.Node          { return t.e.El("a", args...) }
func (t Tags) Strong(args ...any) *jst.Node     { return t.e.El("strong", args...) }
func (t Tags) Em(args ...any) *jst.Node         { return t.e.El("em", args...) }
func (t Tags) Code(args ...any) *jst.Node       { return t.e.El("code", args...) }
func (t Tags) Pre(args ...any) *jst.Node        { return t.e.El("pre", args...) }
func (t Tags) Blockquote(args ...any) *jst.Node { return t.e.El("blockquote", args...) }
func (t Tags) Br() *jst.Node                    { return t.e.El("br") }
func (t Tags) Hr(args ...any) *jst.Node         { return t.e.El("hr", args...) }
func (t Tags) Img(args ...any) *jst.Node        { return t.e.El("img", args...) }

// Lists

func (t Tags) Ul(args ...any) *jst.Node { return t.e.El("ul", args...) }
func (t Tags) Ol(args ...any) *jst.Node { return t.e.El("ol", args...) }
func (t Tags) Li(args ...any) *jst.Node { return t.e.El("li", args...) }

// Tables

func (t Tags) Table(args ...any) *jst.Node { return t.e.El("table", args...) }
func (t Tags) Thead(args ...any) *jst.Node { return t.e.El("thead", args...) }
func (t Tags) Tbody(args ...any) *jst.Node { return t.e.El("tbody", args...) }
func (t Tags) Tr(args ...any) *jst.Node    { return t.e.El("tr", args...) }
func (t Tags) Th(args ...any) *jst.Node    { return t.e.El("th", args...) }
func (t Tags) Td(args ...any) *jst.Node    { return t.e.El("td", args...) }

// Forms

func (t Tags) Form(args ...any) *jst.Node     { return t.e.El("form", args...) }
func (t Tags) Label(args ...any) *jst.Node    { return t.e.El("label", args...) }
func (t Tags) Input(args ...any) *jst.Node    { return t.e.El("input", args...) }
func (t Tags) Textarea(args ...any) *jst.Node { return t.e.El("textarea", args...) }
func (t Tags) Select(args ...any) *jst.Node   { return t.e.El("select", args...) }
func (t Tags) Option(args ...any) *jst.Node   { return t.e.El("option", args...) }
func (t Tags) Button(args ...any) *jst.Node   { return t.e.El("button", args...) }

// SVG creates an svg element in the SVG namespace.
func (t Tags) SVG(args ...any) *jst.Node {
	return t.e.El("svg", append([]any{jst.Attrs{"xmlns": SVGNamespace}}, args...)...)
}

// SVGNamespace is the namespace of SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"
