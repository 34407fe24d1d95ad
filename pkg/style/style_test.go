package style

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom/memdom"
)

type scope struct {
	class, full, name string
}

func (s scope) ClassPrefix() string { return s.class }
func (s scope) FullPrefix() string  { return s.full }
func (s scope) Name() string        { return s.name }

func TestSelector(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"item$c", ".item"},
		{"title$i", "#title"},
		{"a$hover", "a:hover"},
		{"btn$c$hover", ".btn:hover"},
		{"div", "div"},
	}
	for _, tt := range tests {
		if got := selector(tt.in); got != tt.want {
			t.Errorf("selector(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	rules, err := Normalize(
		map[string]any{
			"item$c": []any{
				map[string]any{"fontSize$px": 14, "color": "red"},
				map[string]any{"color": "blue"},
			},
		},
		func() any { return "body { margin: 0; }" },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Rule{
		{Selector: ".item", Decls: []Decl{{"color", "blue"}, {"font-size", "14px"}}},
		{Raw: "body { margin: 0; }"},
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeAtRule(t *testing.T) {
	rules, err := Normalize(map[string]any{
		"$media": map[string]any{
			":rule":  "(max-width: 600px)",
			"item$c": map[string]any{"display": "none"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Stringify("p-", rules)
	want := "@media (max-width: 600px) {\n  .p-item {\n    display: none;\n  }\n}\n"
	if got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestNormalizeRejectsUnknown(t *testing.T) {
	_, err := Normalize(42)
	if !stderrors.Is(err, errors.New("J004")) {
		t.Errorf("err = %v, want J004", err)
	}
}

func TestStringifyScoping(t *testing.T) {
	rules := []Rule{{Selector: ".a .b, #c", Decls: []Decl{{"margin", "0"}}}}
	got := Stringify("jsto1-", rules)
	want := ".jsto1-a .jsto1-b, #jsto1-c {\n  margin: 0;\n}\n"
	if got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(nil)
	one := scope{"jsto1-", "jsto1-i1-", "Row"}
	two := scope{"jsto1-", "jsto1-i2-", "Row"}

	payload := &Payload{
		Local:    []Rule{{Selector: ".row", Decls: []Decl{{"padding", "1px"}}}},
		Instance: []Rule{{Selector: ".me", Decls: []Decl{{"color", "red"}}}},
	}
	r.UpdateCSS(one, payload)
	r.UpdateCSS(two, payload)

	text := r.Text()
	for _, want := range []string{".jsto1-row", ".jsto1-i1-me", ".jsto1-i2-me", "/* Row */"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q:\n%s", want, text)
		}
	}
	if strings.Count(text, ".jsto1-row") != 1 {
		t.Errorf("local CSS should be emitted once per type:\n%s", text)
	}

	r.RemoveCSS(one)
	if r.Has(one) || !r.Has(two) {
		t.Error("only the first instance should be removed")
	}
	if !strings.Contains(r.Text(), ".jsto1-row") {
		t.Error("local CSS should remain while an instance is alive")
	}

	r.RemoveCSS(two)
	if r.Text() != "" {
		t.Errorf("Text() = %q, want empty after last instance", r.Text())
	}
}

func TestRegistryAttach(t *testing.T) {
	doc := memdom.NewDocument()
	head := doc.NewRoot("head")
	r := NewRegistry(nil)
	r.Attach(doc, head)

	s := scope{"jsto3-", "jsto3-i9-", "Box"}
	r.UpdateCSS(s, &Payload{Global: []Rule{{Selector: "body", Decls: []Decl{{"margin", "0"}}}}})

	if !strings.Contains(head.HTML(), "<style>/* Box */\nbody {") {
		t.Errorf("style element not updated: %q", head.HTML())
	}

	doc.ResetOps()
	r.UpdateCSS(s, &Payload{Global: []Rule{{Selector: "body", Decls: []Decl{{"margin", "0"}}}}})
	if doc.Mutations() != 0 {
		t.Errorf("unchanged CSS should not touch the target, got %d mutations", doc.Mutations())
	}

	r.Detach()
	if len(head.Children()) != 0 {
		t.Error("Detach should remove the style element")
	}
}
