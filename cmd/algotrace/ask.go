package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask the algorithm learning assistant",
	Long:  `Sends a question to the configured assistant. Requires assistant.api_key or GEMINI_API_KEY.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithmContext, _ := cmd.Flags().GetString("context")
		query := strings.Join(args, " ")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return cli.AskAssistant(ctx, app, cmd.OutOrStdout(), query, algorithmContext)
		})
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("context", "c", "", "Algorithm currently being studied")
}
