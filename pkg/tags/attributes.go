package tags

import (
	"strconv"

	"github.com/vango-dev/jst/pkg/jst"
)

// Attr sets a single attribute.
func Attr(key string, value any) jst.Attrs { return jst.Attrs{key: value} }

// ID sets the id attribute. A leading "-" or "--" scopes it to the
// enclosing component.
func ID(id string) jst.Attrs { return Attr("id", id) }

// Class adds class names. Names starting with "-" or "--" are scoped to the
// enclosing component.
func Class(classes ...string) jst.Attrs { return Attr("cn", classes) }

// StyleAttr sets the inline style attribute.
func StyleAttr(style string) jst.Attrs { return Attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) jst.Attrs { return Attr("data-"+key, value) }

// Ref records the node on the enclosing component under name.
func Ref(name string) jst.Attrs { return Attr("ref", name) }

// Role sets the role attribute.
func Role(role string) jst.Attrs { return Attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) jst.Attrs { return Attr("aria-label", label) }

// Link attributes

func Href(url string) jst.Attrs   { return Attr("href", url) }
func Src(url string) jst.Attrs    { return Attr("src", url) }
func Alt(text string) jst.Attrs   { return Attr("alt", text) }
func Target(t string) jst.Attrs   { return Attr("target", t) }
func Title(text string) jst.Attrs { return Attr("title", text) }

// Form attributes

func Name(name string) jst.Attrs          { return Attr("name", name) }
func Type(t string) jst.Attrs             { return Attr("type", t) }
func Value(v string) jst.Attrs            { return Attr("value", v) }
func Placeholder(text string) jst.Attrs   { return Attr("placeholder", text) }
func For(id string) jst.Attrs             { return Attr("for", id) }
func MaxLength(n int) jst.Attrs           { return Attr("maxlength", strconv.Itoa(n)) }
func Action(url string) jst.Attrs         { return Attr("action", url) }
func Method(m string) jst.Attrs           { return Attr("method", m) }
func Colspan(n int) jst.Attrs             { return Attr("colspan", strconv.Itoa(n)) }
func TabIndex(n int) jst.Attrs            { return Attr("tabindex", strconv.Itoa(n)) }
func AutoComplete(value string) jst.Attrs { return Attr("autocomplete", value) }

// Props sets boolean properties such as checked or disabled.
func Props(names ...string) jst.Attrs { return Attr("properties", names) }

// Checked sets the checked property when on is true.
func Checked(on bool) jst.Attrs { return propIf("checked", on) }

// Disabled sets the disabled property when on is true.
func Disabled(on bool) jst.Attrs { return propIf("disabled", on) }

// Selected sets the selected property when on is true.
func Selected(on bool) jst.Attrs { return propIf("selected", on) }

// Required sets the required property.
func Required() jst.Attrs { return Props("required") }

func propIf(name string, on bool) jst.Attrs {
	if !on {
		return nil
	}
	return Props(name)
}

// Options sets reconciliation options on the node.
func Options(opts jst.Options) jst.Attrs { return Attr("jstoptions", opts) }

// ForceUpdate makes reconciliation replace the node instead of patching it.
func ForceUpdate() jst.Attrs { return Options(jst.Options{ForceUpdate: true}) }
