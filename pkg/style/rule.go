package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/flatten"
)

// Decl is a single property declaration.
type Decl struct {
	Prop  string
	Value string
}

// Rule is a normalized CSS rule. At-rules carry nested Rules and a Params
// string (e.g. "(max-width: 600px)"). Raw holds verbatim CSS text.
type Rule struct {
	Selector string
	Params   string
	Decls    []Decl
	Rules    []Rule
	Raw      string
}

// Payload is the CSS a component contributes in one render pass.
type Payload struct {
	Global   []Rule
	Local    []Rule
	Instance []Rule
}

// Empty reports whether the payload carries no rules.
func (p *Payload) Empty() bool {
	return p == nil || len(p.Global)+len(p.Local)+len(p.Instance) == 0
}

var atRules = map[string]bool{
	"$media":             true,
	"$keyframes":         true,
	"$supports":          true,
	"$page":              true,
	"$fontFace":          true,
	"$viewport":          true,
	"$counterStyle":      true,
	"$fontFeatureValues": true,
}

var upperRe = regexp.MustCompile(`[A-Z]`)

// kebab converts camelCase to kebab-case.
func kebab(s string) string {
	return upperRe.ReplaceAllStringFunc(s, func(m string) string {
		return "-" + strings.ToLower(m)
	})
}

// Normalize flattens raw and converts every entry into Rules.
func Normalize(raw ...any) ([]Rule, error) {
	var out []Rule
	for _, entry := range flatten.Flatten(raw...) {
		switch v := entry.(type) {
		case nil:
			continue
		case Rule:
			out = append(out, v)
		case string:
			if strings.TrimSpace(v) != "" {
				out = append(out, Rule{Raw: v})
			}
		case map[string]any:
			rules, err := normalizeObject(v)
			if err != nil {
				return nil, err
			}
			out = append(out, rules...)
		default:
			return nil, errors.New("J004").WithDetailf("unsupported CSS entry of type %T", entry)
		}
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeObject(obj map[string]any) ([]Rule, error) {
	var out []Rule
	for _, key := range sortedKeys(obj) {
		val := obj[key]

		if atRules[key] {
			body, ok := val.(map[string]any)
			if !ok {
				return nil, errors.New("J004").WithDetailf("at-rule %s needs an object body", key)
			}
			rule := Rule{Selector: "@" + kebab(strings.TrimPrefix(key, "$"))}
			inner := make(map[string]any, len(body))
			for k, v := range body {
				if k == ":rule" {
					rule.Params = fmt.Sprint(v)
					continue
				}
				inner[k] = v
			}
			nested, err := normalizeObject(inner)
			if err != nil {
				return nil, err
			}
			rule.Rules = nested
			out = append(out, rule)
			continue
		}

		rule := Rule{Selector: selector(key)}
		for _, part := range flatten.Flatten(val) {
			switch p := part.(type) {
			case nil:
			case map[string]any:
				rule.Decls = mergeDecls(rule.Decls, declarations(p))
			case string:
				rule.Raw = p
			default:
				return nil, errors.New("J004").WithDetailf("rule %q has a %T body", key, part)
			}
		}
		out = append(out, rule)
	}
	return out, nil
}

// selector expands the compact notation: "a$c" → ".a", "a$i" → "#a",
// "a$hover" → "a:hover".
func selector(key string) string {
	parts := strings.Split(key, "$")
	sel := parts[0]
	for _, part := range parts[1:] {
		switch part {
		case "c":
			sel = "." + sel
		case "i":
			sel = "#" + sel
		default:
			sel = sel + ":" + part
		}
	}
	return sel
}

func declarations(obj map[string]any) []Decl {
	decls := make([]Decl, 0, len(obj))
	for _, key := range sortedKeys(obj) {
		prop, unit, _ := strings.Cut(key, "$")
		values := flatten.Flatten(obj[key])
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v == nil {
				continue
			}
			parts = append(parts, withUnit(v, unit))
		}
		decls = append(decls, Decl{Prop: kebab(prop), Value: strings.Join(parts, " ")})
	}
	return decls
}

func withUnit(v any, unit string) string {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(n) + unit
	}
	return fmt.Sprint(v)
}

// mergeDecls overrides properties already present and appends new ones.
func mergeDecls(into, from []Decl) []Decl {
	for _, d := range from {
		replaced := false
		for i := range into {
			if into[i].Prop == d.Prop {
				into[i].Value = d.Value
				replaced = true
				break
			}
		}
		if !replaced {
			into = append(into, d)
		}
	}
	return into
}

var scopeRe = regexp.MustCompile(`([.#])`)

// Stringify renders rules as CSS text. A non-empty prefix is inserted after
// every "." and "#" of each selector.
func Stringify(prefix string, rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		writeRule(&b, prefix, r, "")
	}
	return b.String()
}

func writeRule(b *strings.Builder, prefix string, r Rule, indent string) {
	if r.Selector == "" && r.Raw != "" {
		b.WriteString(indent)
		b.WriteString(strings.TrimSpace(r.Raw))
		b.WriteString("\n")
		return
	}

	if strings.HasPrefix(r.Selector, "@") {
		b.WriteString(indent)
		b.WriteString(r.Selector)
		if r.Params != "" {
			b.WriteString(" ")
			b.WriteString(r.Params)
		}
		b.WriteString(" {\n")
		for _, nested := range r.Rules {
			writeRule(b, prefix, nested, indent+"  ")
		}
		b.WriteString(indent)
		b.WriteString("}\n")
		return
	}

	sel := r.Selector
	if prefix != "" {
		sel = scopeRe.ReplaceAllString(sel, "${1}"+prefix)
	}
	b.WriteString(indent)
	b.WriteString(sel)
	b.WriteString(" {\n")
	for _, d := range r.Decls {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(d.Prop)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	if r.Raw != "" {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(r.Raw))
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}
