package markup

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"angle brackets", "a < b > c", "a &lt; b &gt; c"},
		{"quotes", `it's "fine"`, "it&#39;s &quot;fine&quot;"},
		{"script tag", "<script>alert('xss')</script>", "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"},
		{"unicode preserved", "Hello 世界 🌍", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.expected {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	got := EscapeAttr("a\"b\nc\td")
	want := "a&quot;b&#10;c&#9;d"
	if got != want {
		t.Errorf("EscapeAttr() = %q, want %q", got, want)
	}
}

func TestOpenTag(t *testing.T) {
	var b strings.Builder
	err := OpenTag(&b, "input", map[string]string{"type": "checkbox", "id": "x"}, []string{"checked"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<input id="x" type="checkbox" checked>`
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestCloseTag(t *testing.T) {
	var b strings.Builder
	_ = CloseTag(&b, "input")
	_ = CloseTag(&b, "div")
	if b.String() != "</div>" {
		t.Errorf("got %q, want %q", b.String(), "</div>")
	}
}
