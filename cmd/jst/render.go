package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/internal/demo"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/render"
	"github.com/vango-dev/jst/pkg/style"
)

// mounted is a demo mounted into an in-memory document.
type mounted struct {
	demo   demo.Demo
	doc    *memdom.Document
	styles *style.Registry
}

// mount builds an engine from the configuration and mounts the named demo.
func (a *app) mount(name string, opts ...jst.Option) (*mounted, error) {
	factory, err := demo.Lookup(name)
	if err != nil {
		return nil, err
	}
	m := &mounted{doc: memdom.NewDocument(), styles: style.NewRegistry(a.logger)}
	opts = append([]jst.Option{
		jst.WithLogger(a.logger),
		jst.WithStyles(m.styles),
		jst.WithPrefix(a.cfg.Render.Prefix),
	}, opts...)
	e, err := jst.New(m.doc, opts...)
	if err != nil {
		return nil, err
	}
	m.demo = factory(e)
	if _, err := e.Mount(m.doc.NewRoot("body"), m.demo.Component()); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *mounted) page() render.PageData {
	return render.PageData{
		Title:  m.demo.Title(),
		Body:   m.demo.Component(),
		Styles: []string{m.styles.Text()},
	}
}

func renderCmd(a *app) *cobra.Command {
	var (
		indent        int
		ticks         int
		page          bool
		showFragments bool
	)

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Render a demo to HTML",
		Long: `Render a demo to HTML on standard output.

The demo is mounted, advanced by --ticks steps and then serialized from
its logical model.

Examples:
  jst render todo
  jst render todo --ticks=6 --indent=2
  jst render balls --page`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.mount(args[0])
			if err != nil {
				return err
			}
			for i := 0; i < ticks; i++ {
				step, err := m.demo.Tick()
				if err != nil {
					return err
				}
				a.logger.Debug("tick", "tick", i+1, "step", step)
			}

			cfg := render.RendererConfig{Indent: a.cfg.Render.Indent, ShowFragments: a.cfg.Render.ShowFragments}
			if cmd.Flags().Changed("indent") {
				cfg.Indent = indent
			}
			if showFragments {
				cfg.ShowFragments = true
			}
			renderer := render.NewRenderer(cfg)

			w := cmd.OutOrStdout()
			if page {
				return renderer.RenderPage(w, m.page())
			}
			if err := renderer.RenderComponent(w, m.demo.Component()); err != nil {
				return err
			}
			if cfg.Indent == 0 {
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&indent, "indent", "i", 0, "Spaces per nesting level (default from config)")
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 0, "Number of demo steps to run before rendering")
	cmd.Flags().BoolVar(&page, "page", false, "Render a complete HTML document")
	cmd.Flags().BoolVar(&showFragments, "show-fragments", false, "Write component fragments as <jstobject> elements")

	return cmd
}
