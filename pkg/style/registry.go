package style

import (
	"log/slog"
	"strings"

	"github.com/vango-dev/jst/pkg/dom"
)

// Scope identifies the component a payload belongs to.
type Scope interface {
	// ClassPrefix is shared by every instance of a component type.
	ClassPrefix() string
	// FullPrefix is unique to one component instance.
	FullPrefix() string
	// Name is the component type name, used in comments.
	Name() string
}

// sheet holds the generated CSS for one component type.
type sheet struct {
	name      string
	global    string
	local     string
	instances map[string]string
	order     []string
}

// Registry collects generated CSS per component type. The zero value is not
// usable; create one with NewRegistry. A Registry is owned by one engine and
// is not safe for concurrent use.
type Registry struct {
	sheets map[string]*sheet
	order  []string
	logger *slog.Logger

	// Optional live mirror.
	el   dom.Node
	text dom.Node
	last string
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sheets: make(map[string]*sheet),
		logger: logger.With("component", "style"),
	}
}

// UpdateCSS replaces the CSS contributed by s.
func (r *Registry) UpdateCSS(s Scope, p *Payload) {
	if p == nil {
		return
	}
	classPrefix := s.ClassPrefix()
	fullPrefix := s.FullPrefix()

	sh, ok := r.sheets[classPrefix]
	if !ok {
		sh = &sheet{name: s.Name(), instances: make(map[string]string)}
		r.sheets[classPrefix] = sh
		r.order = append(r.order, classPrefix)
	}
	sh.global = Stringify("", p.Global)
	sh.local = Stringify(classPrefix, p.Local)
	if _, seen := sh.instances[fullPrefix]; !seen {
		sh.order = append(sh.order, fullPrefix)
	}
	sh.instances[fullPrefix] = Stringify(fullPrefix, p.Instance)

	r.sync()
}

// RemoveCSS drops the instance CSS of s. When the last instance of a type is
// removed, the type's global and local CSS go with it.
func (r *Registry) RemoveCSS(s Scope) {
	classPrefix := s.ClassPrefix()
	sh, ok := r.sheets[classPrefix]
	if !ok {
		return
	}
	fullPrefix := s.FullPrefix()
	if _, ok := sh.instances[fullPrefix]; !ok {
		return
	}
	delete(sh.instances, fullPrefix)
	for i, p := range sh.order {
		if p == fullPrefix {
			sh.order = append(sh.order[:i], sh.order[i+1:]...)
			break
		}
	}

	if len(sh.instances) == 0 {
		delete(r.sheets, classPrefix)
		for i, p := range r.order {
			if p == classPrefix {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		r.logger.Debug("style sheet dropped", "class_prefix", classPrefix, "name", sh.name)
	}

	r.sync()
}

// Has reports whether CSS is registered for the instance s.
func (r *Registry) Has(s Scope) bool {
	sh, ok := r.sheets[s.ClassPrefix()]
	if !ok {
		return false
	}
	_, ok = sh.instances[s.FullPrefix()]
	return ok
}

// Text returns all registered CSS in registration order.
func (r *Registry) Text() string {
	var b strings.Builder
	for _, classPrefix := range r.order {
		sh := r.sheets[classPrefix]
		b.WriteString("/* ")
		b.WriteString(sh.name)
		b.WriteString(" */\n")
		b.WriteString(sh.global)
		b.WriteString(sh.local)
		for _, fullPrefix := range sh.order {
			b.WriteString(sh.instances[fullPrefix])
		}
	}
	return b.String()
}

// Attach mirrors the registry into a <style> element appended to parent.
// Later updates rewrite the element's text in place.
func (r *Registry) Attach(doc dom.Document, parent dom.Node) {
	if r.el != nil {
		return
	}
	r.el = doc.CreateElement("", "style")
	r.last = r.Text()
	r.text = doc.CreateTextNode(r.last)
	r.el.InsertBefore(r.text, nil)
	parent.InsertBefore(r.el, nil)
}

// Detach removes the mirrored <style> element.
func (r *Registry) Detach() {
	if r.el == nil {
		return
	}
	r.el.Remove()
	r.el, r.text, r.last = nil, nil, ""
}

func (r *Registry) sync() {
	if r.text == nil {
		return
	}
	text := r.Text()
	if text == r.last {
		return
	}
	r.last = text
	r.text.SetText(text)
}
