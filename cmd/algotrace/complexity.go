package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
)

var complexityCmd = &cobra.Command{
	Use:   "complexity [algorithm]",
	Short: "Show time and space complexity",
	Long: `Without arguments, prints the complexity table of every algorithm.
With an algorithm and --size, estimates the operations for an input of that size.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var algorithm string
		if len(args) > 0 {
			algorithm = args[0]
		}
		size, _ := cmd.Flags().GetInt("size")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return cli.ShowComplexity(ctx, app, cmd.OutOrStdout(), algorithm, size)
		})
	},
}

func init() {
	rootCmd.AddCommand(complexityCmd)
	complexityCmd.Flags().IntP("size", "n", 0, "Input size for operation estimates")
}
