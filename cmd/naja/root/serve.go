package root

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/api"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newServeCmd() *cobra.Command {
	var addr string
	var metrics bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API for the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = a.cfg.API.Addr
			}

			srv := api.NewServer(a.profiles, a.goals, a.content)
			if metrics || a.cfg.API.Metrics {
				srv.EnableMetrics()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s listening on %s\n", ui.IconInfo, ui.Key.Render("http://"+addr))
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus /metrics")

	return cmd
}
