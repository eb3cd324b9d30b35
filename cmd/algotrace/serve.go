package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the algotrace HTTP API with OpenAPI docs at /api/docs and Prometheus metrics at /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		tui.PrintBanner(os.Stdout)
		return cli.Serve(ctx, cfg.Server.Addr(), app.Handler(), app.Logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8000, "Port to listen on (overrides the configuration)")
}
