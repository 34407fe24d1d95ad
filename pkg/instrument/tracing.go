package instrument

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/jst"
)

// Default tracer name for jst engines.
const defaultTracerName = "jst"

// TracingConfig configures the OpenTelemetry observer.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "jst").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// Context is the parent of top-level refresh spans.
	// Default: context.Background()
	Context context.Context

	// AttributeExtractor adds custom attributes to each refresh span.
	AttributeExtractor func(c *jst.Component) []attribute.KeyValue
}

// TracingOption configures the OpenTelemetry observer.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(p trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = p
	}
}

// WithContext sets the parent context of top-level spans.
func WithContext(ctx context.Context) TracingOption {
	return func(c *TracingConfig) {
		c.Context = ctx
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(c *jst.Component) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = fn
	}
}

// activeSpan is a refresh span that is still open.
type activeSpan struct {
	ctx  context.Context
	span trace.Span
	ops  int
}

// Tracing is a jst.Observer that opens a "jst.refresh" span per component
// render. Renders of nested components become child spans, and target
// operations are counted on the innermost open span.
type Tracing struct {
	config TracingConfig
	tracer trace.Tracer
	stack  []*activeSpan
}

var _ jst.Observer = (*Tracing)(nil)

// NewTracing returns a tracing observer.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracing{config: config, tracer: provider.Tracer(config.TracerName)}
}

// RefreshStarted opens a span for the render of c.
func (t *Tracing) RefreshStarted(c *jst.Component) func(error) {
	parent := t.config.Context
	if n := len(t.stack); n > 0 {
		parent = t.stack[n-1].ctx
	}

	attrs := []attribute.KeyValue{
		attribute.String("jst.component", c.Name()),
		attribute.String("jst.component_id", strconv.FormatUint(uint64(c.ID()), 10)),
		attribute.Int("jst.class_id", c.ClassID()),
		attribute.Bool("jst.first_render", c.Tree() == nil),
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(c)...)
	}

	ctx, span := t.tracer.Start(parent, "jst.refresh",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	active := &activeSpan{ctx: ctx, span: span}
	t.stack = append(t.stack, active)

	return func(err error) {
		t.pop(active)
		span.SetAttributes(attribute.Int("jst.target_ops", active.ops))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// pop removes a and anything opened after it. Spans above a belong to
// renders that unwound without reporting.
func (t *Tracing) pop(a *activeSpan) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] == a {
			t.stack = t.stack[:i]
			return
		}
	}
}

// Mutated counts op on the innermost open span.
func (t *Tracing) Mutated(dom.Op) {
	if n := len(t.stack); n > 0 {
		t.stack[n-1].ops++
	}
}

// TornDown records a span event on the innermost open span.
func (t *Tracing) TornDown(c *jst.Component) {
	if n := len(t.stack); n > 0 {
		t.stack[n-1].span.AddEvent("jst.teardown", trace.WithAttributes(
			attribute.String("jst.component", c.Name()),
		))
	}
}
