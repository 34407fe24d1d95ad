package jst

import (
	"sort"

	"github.com/vango-dev/jst/pkg/dom"
)

// Form collects the inputs bound inside a form element.
type Form struct {
	name   string
	node   *Node
	inputs map[string][]*Node
	order  []string
}

// Name returns the name the form is registered under.
func (f *Form) Name() string { return f.name }

// Node returns the form element.
func (f *Form) Node() *Node { return f.node }

// AddForm registers a form element with c. The form is named after its
// name, id or ref attribute; forms without any of them are not registered.
// Registering a name again rebinds the existing form to n.
func (c *Component) AddForm(n *Node) *Form {
	name := formName(n)
	if name == "" {
		c.eng.warnf("form has no name, id or ref", "component", c.Name(), "node_id", n.id)
		return nil
	}
	if c.forms == nil {
		c.forms = make(map[string]*Form)
	}
	f, ok := c.forms[name]
	if !ok {
		f = &Form{name: name, inputs: make(map[string][]*Node)}
		c.forms[name] = f
	}
	f.node = n
	return f
}

// Form returns the form registered under name.
func (c *Component) Form(name string) *Form {
	return c.forms[name]
}

// FormValues returns the current values of the named form's inputs, or nil
// when no such form is registered.
func (c *Component) FormValues(name string) map[string]string {
	f := c.forms[name]
	if f == nil {
		return nil
	}
	return f.Values()
}

func formName(n *Node) string {
	for _, key := range []string{"name", "id", "ref"} {
		if v := n.attrs[key]; v != "" {
			return v
		}
	}
	return ""
}

// AddInput registers an input, textarea or select element. Inputs are keyed
// by their name attribute, falling back to id.
func (f *Form) AddInput(n *Node) {
	name := n.attrs["name"]
	if name == "" {
		name = n.attrs["id"]
	}
	if name == "" {
		return
	}
	if _, ok := f.inputs[name]; !ok {
		f.order = append(f.order, name)
	}
	for _, existing := range f.inputs[name] {
		if existing == n {
			return
		}
	}
	f.inputs[name] = append(f.inputs[name], n)
}

// Inputs returns the registered input names, sorted.
func (f *Form) Inputs() []string {
	out := append([]string(nil), f.order...)
	sort.Strings(out)
	return out
}

// Values reads the current value of every input. Checkboxes yield "true" or
// "false" unless they carry a value attribute, in which case they yield the
// value when checked and are left out otherwise. Of a group of radio
// buttons, the checked one's value is reported. Released inputs are skipped.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.inputs))
	for _, name := range f.order {
		for _, n := range f.inputs[name] {
			if n.deleted {
				continue
			}
			switch n.attrs["type"] {
			case "checkbox":
				checked := inputChecked(n)
				if v, ok := n.attrs["value"]; ok {
					if checked {
						out[name] = v
					}
				} else {
					out[name] = boolString(checked)
				}
			case "radio":
				if inputChecked(n) {
					out[name] = n.attrs["value"]
				}
			default:
				out[name] = inputValue(n)
			}
		}
	}
	return out
}

func inputValue(n *Node) string {
	if vr, ok := n.Handle().(dom.ValueReader); ok {
		return vr.Value()
	}
	return n.attrs["value"]
}

func inputChecked(n *Node) bool {
	if vr, ok := n.Handle().(dom.ValueReader); ok {
		return vr.Checked()
	}
	return containsString(n.flags, "checked")
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
