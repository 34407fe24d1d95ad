package jsttest

import (
	"strings"
	"testing"

	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/render"
)

// RenderToString serializes a node and returns the HTML string, or "" when
// serialization fails.
//
// Example:
//
//	html := jsttest.RenderToString(node)
func RenderToString(n *jst.Node) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(n)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that the serialized node contains expected.
//
// Example:
//
//	jsttest.ExpectContains(t, node, "Welcome Admin")
func ExpectContains(t testing.TB, n *jst.Node, expected string) {
	t.Helper()
	html := RenderToString(n)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the serialized node does not contain
// unexpected.
func ExpectNotContains(t testing.TB, n *jst.Node, unexpected string) {
	t.Helper()
	html := RenderToString(n)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the serialized node contains a specific tag.
func ExpectElement(t testing.TB, n *jst.Node, tag string) {
	t.Helper()
	html := RenderToString(n)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the serialized node contains an attribute
// value.
//
// Example:
//
//	jsttest.ExpectAttribute(t, node, "class", "btn-primary")
func ExpectAttribute(t testing.TB, n *jst.Node, attr, value string) {
	t.Helper()
	html := RenderToString(n)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
