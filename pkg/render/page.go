package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/jst/internal/markup"
	"github.com/vango-dev/jst/pkg/jst"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the component rendered inside <body>.
	Body *jst.Component

	// Title is the page title
	Title string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS, typically the style registry's text
	Styles []string

	// Scripts contains script tags appended to the body
	Scripts []ScriptTag

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	sw := &stickyWriter{w: w}
	sw.writeString("<!DOCTYPE html>\n")
	_, _ = fmt.Fprintf(sw, `<html lang="%s">`+"\n", markup.EscapeAttr(lang))
	r.renderHead(sw, page)
	sw.writeString("<body>\n")
	if err := sw.result(); err != nil {
		return err
	}

	if err := r.RenderComponent(sw, page.Body); err != nil {
		return err
	}
	if r.config.Indent == 0 {
		sw.writeString("\n")
	}

	for _, script := range page.Scripts {
		r.renderScriptTag(sw, script)
	}
	sw.writeString("</body>\n</html>\n")
	return sw.result()
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w *stickyWriter, page PageData) {
	w.writeString("<head>\n")
	w.writeString(`  <meta charset="utf-8">` + "\n")
	w.writeString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		_, _ = fmt.Fprintf(w, "  <title>%s</title>\n", markup.EscapeText(page.Title))
	}
	for _, meta := range page.Meta {
		attrs := map[string]string{"content": meta.Content}
		if meta.Name != "" {
			attrs["name"] = meta.Name
		}
		if meta.Property != "" {
			attrs["property"] = meta.Property
		}
		w.writeString("  ")
		_ = markup.OpenTag(w, "meta", attrs, nil)
		w.writeString("\n")
	}
	for _, href := range page.StyleSheets {
		_, _ = fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", markup.EscapeAttr(href))
	}
	for _, css := range page.Styles {
		if css == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "  <style>\n%s</style>\n", css)
	}
	w.writeString("</head>\n")
}

// renderScriptTag renders a script element.
func (r *Renderer) renderScriptTag(w *stickyWriter, script ScriptTag) {
	attrs := map[string]string{}
	if script.Src != "" {
		attrs["src"] = script.Src
	}
	if script.Module {
		attrs["type"] = "module"
	}
	var flags []string
	if script.Defer {
		flags = append(flags, "defer")
	}
	_ = markup.OpenTag(w, "script", attrs, flags)
	w.writeString(script.Inline)
	w.writeString("</script>\n")
}
