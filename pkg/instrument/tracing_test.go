package instrument

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vango-dev/jst/pkg/jst"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracingNestsChildRenders(t *testing.T) {
	sr, tp := newRecorder()
	tr := NewTracing(WithTracerProvider(tp), WithAttributeExtractor(func(c *jst.Component) []attribute.KeyValue {
		return []attribute.KeyValue{attribute.String("test.attr", "ok")}
	}))
	e, doc := newEngine(t, tr)

	_, c := newTable(e, "a", "b")
	if _, err := e.Mount(doc.NewRoot("main"), c); err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	spans := sr.Ended()
	if len(spans) != 3 {
		t.Fatalf("ended spans = %d, want 3", len(spans))
	}
	parent := spans[2]
	if name, _ := spanAttr(parent, "jst.component"); name.AsString() != "table" {
		t.Fatalf("last span component = %q, want table", name.AsString())
	}
	for _, child := range spans[:2] {
		if child.Name() != "jst.refresh" {
			t.Errorf("span name = %q", child.Name())
		}
		if child.Parent().SpanID() != parent.SpanContext().SpanID() {
			t.Error("row span is not a child of the table span")
		}
		if v, _ := spanAttr(child, "test.attr"); v.AsString() != "ok" {
			t.Error("custom attribute missing")
		}
		if v, _ := spanAttr(child, "jst.first_render"); !v.AsBool() {
			t.Error("jst.first_render = false on first render")
		}
		if child.Status().Code != codes.Ok {
			t.Errorf("status = %v, want Ok", child.Status().Code)
		}
	}
	if len(tr.stack) != 0 {
		t.Errorf("open spans after render = %d", len(tr.stack))
	}
}

func TestTracingCountsOpsAndTeardowns(t *testing.T) {
	sr, tp := newRecorder()
	tr := NewTracing(WithTracerProvider(tp))
	e, doc := newEngine(t, tr)

	tb, c := newTable(e, "a", "b", "c")
	if _, err := e.Mount(doc.NewRoot("main"), c); err != nil {
		t.Fatalf("Mount() error: %v", err)
	}
	before := len(sr.Ended())

	tb.rows = tb.rows[1:]
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}

	spans := sr.Ended()[before:]
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	s := spans[0]
	if v, _ := spanAttr(s, "jst.target_ops"); v.AsInt64() != 1 {
		t.Errorf("jst.target_ops = %d, want 1", v.AsInt64())
	}
	if v, _ := spanAttr(s, "jst.first_render"); v.AsBool() {
		t.Error("jst.first_render = true on refresh")
	}
	var teardowns int
	for _, ev := range s.Events() {
		if ev.Name == "jst.teardown" {
			teardowns++
		}
	}
	if teardowns != 1 {
		t.Errorf("teardown events = %d, want 1", teardowns)
	}
}

func TestTracingRecordsErrors(t *testing.T) {
	sr, tp := newRecorder()
	e, doc := newEngine(t, NewTracing(WithTracerProvider(tp)))

	if _, err := e.Mount(doc.NewRoot("main"), e.Component(shell{})); err == nil {
		t.Fatal("Mount() succeeded, want J001")
	}
	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status().Code)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("error not recorded on span")
	}
}
