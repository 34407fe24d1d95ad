package instrument

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/vango-dev/jst/pkg/dom"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetricsRecordsRefreshesAndOps(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	e, doc := newEngine(t, m)

	tb, c := newTable(e, "a", "b", "c")
	if _, err := e.Mount(doc.NewRoot("main"), c); err != nil {
		t.Fatalf("Mount() error: %v", err)
	}

	if got := metricCounterValue(t, m.refreshes.WithLabelValues("table")); got != 1 {
		t.Errorf("refreshes_total(table) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.refreshes.WithLabelValues("row")); got != 3 {
		t.Errorf("refreshes_total(row) = %v, want 3", got)
	}
	if got := metricHistogramCount(t, m.refreshDuration.WithLabelValues("row")); got != 3 {
		t.Errorf("refresh_duration_seconds(row) count = %d, want 3", got)
	}
	inserts := metricCounterValue(t, m.targetOps.WithLabelValues(dom.OpInsert.String()))
	if want := float64(doc.Count(dom.OpInsert)); inserts != want {
		t.Errorf("target_ops_total(Insert) = %v, want %v", inserts, want)
	}

	tb.rows = tb.rows[:2]
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if got := metricCounterValue(t, m.teardowns.WithLabelValues("row")); got != 1 {
		t.Errorf("teardowns_total(row) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.targetOps.WithLabelValues(dom.OpRemove.String())); got != 1 {
		t.Errorf("target_ops_total(Remove) = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"test_refreshes_total", "test_refresh_duration_seconds", "test_target_ops_total", "test_teardowns_total"} {
		if !names[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}

func TestMetricsRecordsErrorCodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	e, doc := newEngine(t, m)

	if _, err := e.Mount(doc.NewRoot("main"), e.Component(shell{})); err == nil {
		t.Fatal("Mount() succeeded, want J001")
	}
	if got := metricCounterValue(t, m.refreshErrors.WithLabelValues("shell", "J001")); got != 1 {
		t.Errorf("refresh_errors_total(shell, J001) = %v, want 1", got)
	}
}

func TestErrorCode(t *testing.T) {
	if got := errorCode(io.EOF); got != "unknown" {
		t.Errorf("errorCode(plain) = %q, want unknown", got)
	}
}
