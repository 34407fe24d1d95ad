// Package dev serves a demo over HTTP while it ticks.
//
// The demo is mounted into an in-memory document. Every tick advances the
// demo, and the operations the engine applied are broadcast as JSON to
// WebSocket clients on /ops. The page at / is the demo rendered from the
// live model; the script it carries re-fetches /fragment after each tick.
//
// Routes:
//
//	GET  /          full page
//	GET  /fragment  demo markup only
//	GET  /styles    generated CSS
//	GET  /ops       WebSocket stream of TickMessage values
//	POST /tick      advance one tick
//	GET  /metrics   Prometheus metrics
//	GET  /healthz   liveness probe
package dev
