package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/substrate-ui/substrate/internal/demo"
)

func demoCmd() *cobra.Command {
	var (
		addr        string
		allowOrigin bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the name-card demo server",
		Long: `Run the demo server: a profile form backed by one store per
WebSocket session. Open the page in a browser and watch each field's
binding refresh independently. Prometheus metrics are exposed at
/metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			cfg := demo.Config{
				Address: addr,
				Logger:  logger,
			}
			if allowOrigin {
				cfg.CheckOrigin = func(r *http.Request) bool { return true }
			}

			return demo.NewServer(cfg).Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8780", "Address to listen on")
	cmd.Flags().BoolVar(&allowOrigin, "allow-any-origin", false, "Disable the WebSocket origin check")

	return cmd
}
