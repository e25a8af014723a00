package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/jmxforge/internal/app"
	"github.com/specialistvlad/jmxforge/internal/ctxlog"
)

func newServeCmd() *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the plan-editing HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup()
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.New(cfg, ctxlog.FromContext(ctx))
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (overrides config)")
	return cmd
}
