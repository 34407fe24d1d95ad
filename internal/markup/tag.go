package markup

import (
	"io"
	"sort"
	"strings"
)

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid returns true if the tag is a void element.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// OpenTag writes "<tag a="1" b="2" flag>". Attributes are sorted by name for
// deterministic output; flags follow in the order given.
func OpenTag(w io.Writer, tag string, attrs map[string]string, flags []string) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(EscapeAttr(attrs[k]))
		b.WriteByte('"')
	}
	for _, f := range flags {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte('>')

	_, err := io.WriteString(w, b.String())
	return err
}

// CloseTag writes "</tag>" unless tag is a void element.
func CloseTag(w io.Writer, tag string) error {
	if IsVoid(tag) {
		return nil
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}
