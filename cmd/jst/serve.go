package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/internal/demo"
	"github.com/vango-dev/jst/internal/dev"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port int
		host string
		tick string
	)

	cmd := &cobra.Command{
		Use:   "serve <demo>",
		Short: "Serve a demo and stream its DOM operations",
		Long: `Serve a demo over HTTP while it ticks.

Each tick's target operations are broadcast as JSON on the /ops
WebSocket. Engine metrics are exposed on /metrics.

Examples:
  jst serve todo
  jst serve balls --port=8080 --tick=100ms`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Serve.Port = port
			}
			if host != "" {
				a.cfg.Serve.Host = host
			}
			if tick != "" {
				a.cfg.Serve.Tick = tick
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			server, err := dev.NewServer(dev.ServerOptions{
				Config: a.cfg,
				Demo:   args[0],
				Logger: a.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			a.success(w, "Serving %s at http://%s", args[0], a.cfg.ServeAddress())
			info(w, "ops stream: ws://%s/ops", a.cfg.ServeAddress())
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&tick, "tick", "", "Interval between demo steps, e.g. 500ms (default from config)")

	return cmd
}
