package memdom

import (
	"strings"

	"github.com/vango-dev/jst/internal/markup"
)

// HTML returns the outer markup of the live subtree rooted at e.
func (e *Element) HTML() string {
	var b strings.Builder
	e.writeHTML(&b)
	return b.String()
}

// InnerHTML returns the markup of e's children.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for _, c := range e.children {
		c.writeHTML(&b)
	}
	return b.String()
}

func (e *Element) writeHTML(b *strings.Builder) {
	if e.isText {
		b.WriteString(markup.EscapeText(e.text))
		return
	}
	_ = markup.OpenTag(b, e.tag, e.attrs, e.Flags())
	for _, c := range e.children {
		c.writeHTML(b)
	}
	_ = markup.CloseTag(b, e.tag)
}
