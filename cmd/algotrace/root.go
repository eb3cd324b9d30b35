package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/internal/config"
	"github.com/aretw0/algotrace/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "algotrace",
	Short: "algotrace records sorting and searching algorithms step by step",
	Long: `algotrace executes classic sorting and searching algorithms on integer arrays,
recording every comparison and swap as a replayable trace. Traces can be printed,
played back in the terminal, or served over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "algotrace.yaml", "Path to the configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the configuration)")
}

// loadConfig reads the configuration named by --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, nil
}

// newApp wires the engine for a command. Callers must Close the app.
func newApp(ctx context.Context, cfg config.Config) (*cli.App, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(ctx, cfg, logging.New(level))
}

// withApp loads the configuration, wires the engine and runs fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *cli.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(cmd.Context(), app)
}
