package dev

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/jst/internal/config"
	"github.com/vango-dev/jst/internal/demo"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/instrument"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/render"
	"github.com/vango-dev/jst/pkg/style"
)

// ServerOptions configures the server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Demo names the demo to serve.
	Demo string

	// Logger receives server and engine logs.
	Logger *slog.Logger

	// Registry receives the engine metrics. A fresh registry is used when
	// nil.
	Registry *prometheus.Registry
}

// Server mounts one demo and serves it.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	hub      *Hub
	renderer *render.Renderer

	// mu guards everything below. The engine is not safe for concurrent use.
	mu      sync.Mutex
	doc     *memdom.Document
	styles  *style.Registry
	demo    demo.Demo
	pending []dom.Record
	ticks   int
	lastCSS string

	httpServer *http.Server
}

// NewServer builds the engine, mounts the demo and returns the server.
func NewServer(options ServerOptions) (*Server, error) {
	cfg := options.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	factory, err := demo.Lookup(options.Demo)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:   cfg,
		logger:   logger.With("component", "dev"),
		registry: registry,
		hub:      NewHub(logger.With("component", "hub")),
		renderer: render.NewRenderer(render.RendererConfig{
			Indent:        cfg.Render.Indent,
			ShowFragments: cfg.Render.ShowFragments,
		}),
		doc:    memdom.NewDocument(),
		styles: style.NewRegistry(logger),
	}

	observers := []jst.Observer{instrument.NewTracing(instrument.WithTracerName(cfg.Tracing.TracerName))}
	if cfg.Metrics.Enabled {
		observers = append(observers, instrument.NewMetrics(
			instrument.WithNamespace(cfg.Metrics.Namespace),
			instrument.WithRegistry(registry),
		))
	}
	e, err := jst.New(s.doc,
		jst.WithLogger(logger),
		jst.WithStyles(s.styles),
		jst.WithPrefix(cfg.Render.Prefix),
		jst.WithObserver(jst.Observers(observers...)),
	)
	if err != nil {
		return nil, err
	}

	s.demo = factory(e)
	if _, err := e.Mount(s.doc.NewRoot("body"), s.demo.Component()); err != nil {
		return nil, err
	}
	s.doc.ResetOps()
	s.doc.Watch(func(r dom.Record) { s.pending = append(s.pending, r) })
	s.lastCSS = s.styles.Text()
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/fragment", s.handleFragment)
	r.Get("/styles", s.handleStyles)
	r.Get("/ops", s.hub.HandleWebSocket)
	r.Post("/tick", s.handleTick)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// Tick advances the demo once and broadcasts the resulting operations.
func (s *Server) Tick() TickMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks++
	s.pending = s.pending[:0]
	step, err := s.demo.Tick()

	msg := TickMessage{Tick: s.ticks, Step: step, Ops: make([]OpRecord, len(s.pending))}
	for i, r := range s.pending {
		msg.Ops[i] = opRecord(r)
	}
	if css := s.styles.Text(); css != s.lastCSS {
		s.lastCSS = css
		msg.CSS = true
	}
	if err != nil {
		msg.Error = err.Error()
		s.logger.Error("tick failed", "tick", s.ticks, "error", err)
	} else {
		s.logger.Debug("tick", "tick", s.ticks, "step", step, "ops", len(msg.Ops))
	}
	s.doc.ResetOps()

	s.hub.Broadcast(msg)
	return msg
}

// Start serves HTTP on the configured address and ticks until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.ServeAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	s.logger.Info("serving demo", "demo", s.demo.Title(), "address", "http://"+s.config.ServeAddress())

	ticker := time.NewTicker(s.config.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return nil
		case err := <-errCh:
			s.Stop()
			return err
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Stop closes client connections and shuts the HTTP server down.
func (s *Server) Stop() {
	s.hub.Close()
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.renderer.RenderPage(w, render.PageData{
		Title:   s.demo.Title(),
		Body:    s.demo.Component(),
		Styles:  []string{s.styles.Text()},
		Scripts: []render.ScriptTag{{Inline: clientScript}},
	})
	if err != nil {
		s.logger.Error("render page", "error", err)
	}
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderComponent(w, s.demo.Component()); err != nil {
		s.logger.Error("render fragment", "error", err)
	}
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	css := s.styles.Text()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(css))
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	msg := s.Tick()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		s.logger.Error("encode tick", "error", err)
	}
}

const clientScript = `
(function() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '/ops');
    ws.onmessage = function(e) {
        var msg = JSON.parse(e.data);
        if (!msg.ops.length && !msg.css) {
            return;
        }
        fetch('/fragment').then(function(r) { return r.text(); }).then(function(html) {
            var script = document.body.querySelector('script');
            document.body.innerHTML = html;
            if (script) {
                document.body.appendChild(script);
            }
        });
        if (msg.css) {
            fetch('/styles').then(function(r) { return r.text(); }).then(function(css) {
                document.querySelector('style').textContent = css;
            });
        }
    };
})();
`
