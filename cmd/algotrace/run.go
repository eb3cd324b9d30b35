package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/algotrace/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <algorithm> <values...>",
	Short: "Execute an algorithm and print its trace",
	Long: `Executes one algorithm on the given integers and prints every recorded step.

Algorithms: bubble, quick, merge, selection, insertion, linear, binary.
Values may be separate arguments or comma separated: "run quick 5,3,8,1".
Searching algorithms need --target.`,
	Example: `  algotrace run bubble 3 1 2
  algotrace run binary 5,3,8,1 --target 8
  algotrace run quick 9 4 7 1 --play`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := cli.ParseValues(args[1:])
		if err != nil {
			return err
		}

		opts := cli.RunOptions{Algorithm: args[0], Values: values}
		if cmd.Flags().Changed("target") {
			target, _ := cmd.Flags().GetInt("target")
			opts.Target = &target
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Play, _ = cmd.Flags().GetBool("play")
		opts.Plot, _ = cmd.Flags().GetBool("plot")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return cli.RunAlgorithm(ctx, app, cmd.OutOrStdout(), opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("target", "t", 0, "Value to search for (linear and binary)")
	runCmd.Flags().Bool("json", false, "Print the execution as JSON")
	runCmd.Flags().BoolP("play", "p", false, "Open the interactive step player")
	runCmd.Flags().Bool("plot", false, "Plot comparisons and swaps per step")
	runCmd.MarkFlagsMutuallyExclusive("json", "play")
}
