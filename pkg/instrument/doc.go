// Package instrument provides jst.Observer implementations that export
// engine activity as Prometheus metrics and OpenTelemetry spans.
//
//	m := instrument.NewMetrics(instrument.WithRegistry(reg))
//	tr := instrument.NewTracing(instrument.WithTracerName("todo"))
//	e, err := jst.New(doc, jst.WithObserver(jst.Observers(m, tr)))
//
// Like the engine itself, the observers are meant to be used from one
// goroutine; the Prometheus collectors they feed are safe to scrape
// concurrently.
package instrument
