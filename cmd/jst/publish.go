package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/internal/demo"
	"github.com/vango-dev/jst/internal/errors"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/publish"
	"github.com/vango-dev/jst/pkg/render"
	"github.com/vango-dev/jst/pkg/tags"
)

// indexPage lists the published demos.
type indexPage struct {
	t     tags.Tags
	title string
	demos []string
}

func (p *indexPage) Render(e *jst.Engine) any {
	items := make([]*jst.Node, len(p.demos))
	for i, name := range p.demos {
		items[i] = p.t.Li(p.t.A(tags.Href(name+"/index.html"), name))
	}
	return p.t.Main(p.t.H1(p.title), p.t.Ul(items))
}

func publishCmd(a *app) *cobra.Command {
	var (
		out      string
		bucket   string
		prefix   string
		region   string
		endpoint string
		ticks    int
	)

	cmd := &cobra.Command{
		Use:   "publish [demo...]",
		Short: "Publish rendered demos as static pages",
		Long: `Render demos to static HTML and write them to a directory or an
S3 bucket. Without arguments every demo is published. An index page
linking the demos is written as index.html.

S3 credentials are read from AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY.

Examples:
  jst publish --out=dist
  jst publish todo --bucket=my-site --prefix=demos`,
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.cfg.Publish
			if cmd.Flags().Changed("out") {
				pc.Output = out
			}
			if bucket != "" {
				pc.Bucket = bucket
			}
			if prefix != "" {
				pc.KeyPrefix = prefix
			}
			if region != "" {
				pc.Region = region
			}
			if endpoint != "" {
				pc.Endpoint = endpoint
			}

			var store publish.Store
			switch {
			case pc.Bucket != "":
				client := publish.NewS3Client(publish.S3Options{Region: pc.Region, Endpoint: pc.Endpoint})
				store = publish.NewS3Store(client, pc.Bucket, pc.KeyPrefix)
			case pc.Output != "":
				dir := pc.Output
				if !cmd.Flags().Changed("out") {
					dir = a.cfg.OutputPath()
				}
				disk, err := publish.NewDiskStore(dir)
				if err != nil {
					return err
				}
				store = disk
			default:
				return errors.New("J081").
					WithSuggestion("Pass --out=<dir> or --bucket=<name>, or set publish.output in jst.json")
			}

			names := args
			if len(names) == 0 {
				names = demo.Names()
			}
			pages, err := a.publishPages(names, ticks)
			if err != nil {
				return err
			}

			renderer := render.NewRenderer(render.RendererConfig{Indent: a.cfg.Render.Indent})
			p := publish.New(store, publish.WithRenderer(renderer), publish.WithLogger(a.logger))
			results, err := p.Publish(cmd.Context(), pages...)
			if err != nil {
				return err
			}
			for _, r := range results {
				a.success(cmd.OutOrStdout(), "%s (%d bytes)", r.Key, r.Bytes)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload to")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region of the bucket")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3 endpoint for S3 compatible stores")
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 0, "Number of demo steps to run before rendering")

	return cmd
}

// publishPages mounts each demo and returns its page plus an index page.
func (a *app) publishPages(names []string, ticks int) ([]publish.Page, error) {
	pages := make([]publish.Page, 0, len(names)+1)
	for _, name := range names {
		m, err := a.mount(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < ticks; i++ {
			if _, err := m.demo.Tick(); err != nil {
				return nil, err
			}
		}
		pages = append(pages, publish.Page{Key: name + "/index.html", Data: m.page()})
	}

	e, err := jst.New(memdom.NewDocument(), jst.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	index := e.Component(&indexPage{t: tags.New(e), title: a.cfg.Name, demos: names})
	pages = append(pages, publish.Page{Key: "index.html", Data: render.PageData{Title: a.cfg.Name, Body: index}})
	return pages, nil
}
