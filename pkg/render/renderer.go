package render

import (
	"io"
	"strings"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/internal/markup"
	"github.com/vango-dev/jst/pkg/jst"
)

// RendererConfig configures the renderer.
type RendererConfig struct {
	// Indent is the number of spaces per nesting level. Zero writes compact
	// markup with no added whitespace.
	Indent int

	// ShowFragments writes component fragments as <jstobject> elements
	// instead of splicing their children into the parent.
	ShowFragments bool
}

// Renderer serializes jst trees to HTML. It only reads the logical model and
// never touches the render target.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent < 0 {
		config.Indent = 0
	}
	return &Renderer{config: config}
}

// RenderToString renders a node to an HTML string.
func (r *Renderer) RenderToString(n *jst.Node) (string, error) {
	var b strings.Builder
	if err := r.RenderNode(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ComponentToString renders a component to an HTML string.
func (r *Renderer) ComponentToString(c *jst.Component) (string, error) {
	var b strings.Builder
	if err := r.RenderComponent(&b, c); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderNode writes the markup of n and its subtree to w. Scoped class and
// id values resolve against the component that owns n.
func (r *Renderer) RenderNode(w io.Writer, n *jst.Node) error {
	if n == nil {
		return nil
	}
	sw := &stickyWriter{w: w}
	r.renderNode(sw, n, n.Owner(), 0)
	return sw.result()
}

// RenderComponent writes the markup of c's tree to w. A component that has
// not rendered yet is materialized first and stays pinned until the caller
// releases it with Component.Release.
func (r *Renderer) RenderComponent(w io.Writer, c *jst.Component) error {
	if c == nil {
		return nil
	}
	if c.Tree() == nil {
		if err := c.Materialize(); err != nil {
			return err
		}
	}
	sw := &stickyWriter{w: w}
	r.renderNode(sw, c.Tree(), c, 0)
	return sw.result()
}

// renderNode writes one node. Fragments pass their component down as the
// scope for their children and take no nesting level unless shown.
func (r *Renderer) renderNode(w *stickyWriter, n *jst.Node, scope *jst.Component, depth int) {
	if n.IsFragment() {
		if owner := n.Owner(); owner != nil {
			scope = owner
		}
		if !r.config.ShowFragments {
			r.renderChildren(w, n, scope, depth)
			return
		}
	}

	r.writeIndent(w, depth)
	_ = markup.OpenTag(w, n.Tag(), r.scopedAttrs(n, scope), n.Flags())
	r.newline(w)
	if markup.IsVoid(n.Tag()) {
		return
	}

	r.renderChildren(w, n, scope, depth+1)

	r.writeIndent(w, depth)
	_ = markup.CloseTag(w, n.Tag())
	r.newline(w)
}

func (r *Renderer) renderChildren(w *stickyWriter, n *jst.Node, scope *jst.Component, depth int) {
	for _, item := range n.Children() {
		switch item.Kind {
		case jst.KindText:
			r.renderText(w, item.Text, depth)
		case jst.KindElement:
			r.renderNode(w, item.Node, scope, depth)
		case jst.KindComponent:
			if tree := item.Comp.Tree(); tree != nil {
				r.renderNode(w, tree, item.Comp, depth)
			}
		}
	}
}

// renderText writes escaped text. Pretty output puts each text item on its
// own line below its parent's open tag.
func (r *Renderer) renderText(w *stickyWriter, text string, depth int) {
	pretty := r.config.Indent > 0 && depth > 0
	if pretty {
		r.writeIndent(w, depth)
	}
	w.writeString(markup.EscapeText(text))
	if pretty {
		w.writeString("\n")
	}
}

// scopedAttrs returns the node's attributes with component-scoped class and
// id names expanded.
func (r *Renderer) scopedAttrs(n *jst.Node, scope *jst.Component) map[string]string {
	attrs := n.Attrs()
	if scope == nil {
		return attrs
	}
	for _, key := range []string{"class", "id"} {
		if v, ok := attrs[key]; ok {
			attrs[key] = jst.ResolveScope(v, scope)
		}
	}
	return attrs
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	if r.config.Indent == 0 || depth == 0 {
		return
	}
	w.writeString(strings.Repeat(" ", r.config.Indent*depth))
}

func (r *Renderer) newline(w *stickyWriter) {
	if r.config.Indent > 0 {
		w.writeString("\n")
	}
}

// stickyWriter keeps the first write error and drops every later write.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

func (s *stickyWriter) writeString(str string) {
	_, _ = io.WriteString(s, str)
}

func (s *stickyWriter) result() error {
	if s.err == nil {
		return nil
	}
	return errors.New("J041").Wrap(s.err)
}
