package publish

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/render"
)

// Page is one document to publish.
type Page struct {
	// Key is the object key, e.g. "index.html" or "todo/index.html".
	Key string

	// Data is passed to Renderer.RenderPage.
	Data render.PageData
}

// Result describes a published object.
type Result struct {
	Key   string
	Bytes int
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithRenderer sets the renderer used for pages.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = l
	}
}

// Publisher renders pages and writes them to a Store.
type Publisher struct {
	store    Store
	renderer *render.Renderer
	logger   *slog.Logger
}

// New creates a publisher writing to store.
func New(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:    store,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "publish")
	return p
}

// Publish renders and stores each page in order. It stops at the first
// failure and returns the pages written so far.
func (p *Publisher) Publish(ctx context.Context, pages ...Page) ([]Result, error) {
	results := make([]Result, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		var buf bytes.Buffer
		if err := p.renderer.RenderPage(&buf, page.Data); err != nil {
			return results, errors.New("J061").WithDetailf("rendering %s", page.Key).Wrap(err)
		}
		if err := p.store.Put(ctx, page.Key, buf.Bytes(), "text/html; charset=utf-8"); err != nil {
			return results, err
		}
		p.logger.Info("page published", "key", page.Key, "bytes", buf.Len())
		results = append(results, Result{Key: page.Key, Bytes: buf.Len()})
	}
	return results, nil
}
