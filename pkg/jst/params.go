package jst

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/flatten"
)

// Attrs supplies attributes to El. Besides plain attributes it understands
// these keys:
//
//	properties  []string     boolean properties such as "checked"
//	events      Events       event callbacks
//	ref         string       record the node on its owner under this name
//	cn          string       classes appended to "class"
//	jstoptions  Options      reconciliation options
//
// Empty values are skipped.
type Attrs map[string]any

// Events maps event names to callbacks.
type Events map[string]func(dom.Event)

// paramKind is the closed set of things El accepts.
type paramKind uint8

const (
	paramAbsent paramKind = iota
	paramScalar
	paramElement
	paramComponent
	paramAttrs
	paramHost
	paramUnknown
)

func (k paramKind) String() string {
	switch k {
	case paramAbsent:
		return "absent"
	case paramScalar:
		return "scalar"
	case paramElement:
		return "element"
	case paramComponent:
		return "component"
	case paramAttrs:
		return "attrs"
	case paramHost:
		return "host"
	default:
		return "unknown"
	}
}

// classify maps a flattened param onto its kind.
func classify(p any) paramKind {
	switch v := p.(type) {
	case nil:
		return paramAbsent
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return paramScalar
	case *Node:
		if v == nil {
			return paramAbsent
		}
		return paramElement
	case *Component:
		if v == nil {
			return paramAbsent
		}
		return paramComponent
	case Attrs, map[string]any, map[string]string:
		return paramAttrs
	case dom.Node:
		return paramHost
	case fmt.Stringer:
		return paramScalar
	}
	return paramUnknown
}

// scalarText converts a scalar param to its text content.
func scalarText(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ingest appends params to n. The first error raised by a nested component
// render is kept on n; other problems are logged and skipped.
func (e *Engine) ingest(n *Node, params []any) {
	for _, p := range flatten.Flatten(params...) {
		switch classify(p) {
		case paramAbsent:
		case paramScalar:
			n.children = append(n.children, Content{Kind: KindText, Text: scalarText(p)})
		case paramElement:
			child := p.(*Node)
			if child.deleted {
				e.warnf("skipping released node", "tag", child.tag, "node_id", child.id, "parent", n.tag)
				continue
			}
			if child == n {
				e.warnf("skipping node appended to itself", "tag", n.tag, "node_id", n.id)
				continue
			}
			if child.err != nil && n.err == nil {
				n.err = child.err
			}
			n.children = append(n.children, e.retainNode(child))
		case paramComponent:
			item, err := e.retainComponent(p.(*Component))
			if err != nil {
				if n.err == nil {
					n.err = err
				}
				if item.Kind == 0 {
					continue
				}
			}
			n.children = append(n.children, item)
		case paramAttrs:
			e.applyAttrs(n, p)
		case paramHost:
			h := p.(dom.Node)
			n.children = append(n.children, e.retainNode(e.Wrap(h)))
		default:
			e.warnf("skipping unknown param", "tag", n.tag, "param_type", typeName(p))
		}
	}
}

func (e *Engine) applyAttrs(n *Node, p any) {
	var bag map[string]any
	switch v := p.(type) {
	case Attrs:
		bag = v
	case map[string]any:
		bag = v
	case map[string]string:
		bag = make(map[string]any, len(v))
		for k, s := range v {
			bag[k] = s
		}
	}

	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		val := bag[name]
		switch name {
		case "jstoptions":
			switch o := val.(type) {
			case Options:
				n.opts = o
			case *Options:
				if o != nil {
					n.opts = *o
				}
			default:
				e.warnf("ignoring malformed jstoptions", "tag", n.tag, "param_type", typeName(val))
				continue
			}
			if n.opts.Namespace != "" {
				n.ns = n.opts.Namespace
			}
		case "properties":
			for _, flag := range stringList(val) {
				if flag != "" && !containsString(n.flags, flag) {
					n.flags = append(n.flags, flag)
				}
			}
		case "events":
			e.applyEvents(n, val)
		case "ref":
			if s := attrString(val); s != "" {
				n.ref = s
				n.attrs["ref"] = s
			}
		case "cn":
			s := strings.Join(stringList(val), " ")
			if s == "" {
				continue
			}
			if cur := n.attrs["class"]; cur != "" {
				n.attrs["class"] = cur + " " + s
			} else {
				n.attrs["class"] = s
			}
		default:
			s := attrString(val)
			if s == "" {
				continue
			}
			n.attrs[name] = s
			if name == "xmlns" {
				n.ns = s
			}
		}
	}
}

func (e *Engine) applyEvents(n *Node, val any) {
	set := func(name string, fn func(dom.Event)) {
		if name == "" || fn == nil {
			return
		}
		if n.events == nil {
			n.events = make(map[string]func(dom.Event))
		}
		n.events[name] = fn
	}
	switch v := val.(type) {
	case Events:
		for name, fn := range v {
			set(name, fn)
		}
	case map[string]func(dom.Event):
		for name, fn := range v {
			set(name, fn)
		}
	case map[string]func():
		for name, fn := range v {
			if fn != nil {
				f := fn
				set(name, func(dom.Event) { f() })
			}
		}
	case map[string]any:
		for name, raw := range v {
			switch fn := raw.(type) {
			case func(dom.Event):
				set(name, fn)
			case func():
				if fn != nil {
					set(name, func(dom.Event) { fn() })
				}
			default:
				e.warnf("skipping malformed event callback", "tag", n.tag, "event", name, "param_type", typeName(raw))
			}
		}
	case nil:
	default:
		e.warnf("ignoring malformed events", "tag", n.tag, "param_type", typeName(val))
	}
}

// attrString renders an attribute value. Nil and empty values yield "".
func attrString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []string:
		return strings.Join(s, " ")
	}
	if classify(v) == paramScalar {
		return scalarText(v)
	}
	return fmt.Sprint(v)
}

func stringList(v any) []string {
	switch s := v.(type) {
	case nil:
		return nil
	case string:
		if s == "" {
			return nil
		}
		return []string{s}
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str := attrString(item); str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return []string{attrString(v)}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
