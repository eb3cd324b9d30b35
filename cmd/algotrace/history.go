package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded executions, newest first",
	Long: `Lists executions recorded by the configured history store.
The in-memory store only lives for one process, so configure sqlite or redis
to keep history between runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, _ := cmd.Flags().GetString("algorithm")
		limit, _ := cmd.Flags().GetInt("limit")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return cli.ShowHistory(ctx, app, cmd.OutOrStdout(), algorithm, limit)
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringP("algorithm", "a", "", "Only show executions of this algorithm")
	historyCmd.Flags().IntP("limit", "l", 50, "Maximum number of entries (1-100)")
}
