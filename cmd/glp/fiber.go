package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var fiberCmd = &cobra.Command{
	Use:   "fiber",
	Short: "Track fiber intake",
}

var fiberAddCmd = &cobra.Command{
	Use:   "add <grams>",
	Short: "Add fiber in grams",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddFiber(grams); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.0fg today\n", tr.Today().FiberConsumedG)
			return nil
		})
	},
}

var fiberRemoveCmd = &cobra.Command{
	Use:   "remove <grams>",
	Short: "Undo a fiber entry (daily total floors at 0)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddFiber(-grams); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fiber: %.0fg today\n", tr.Today().FiberConsumedG)
			return nil
		})
	},
}

func init() {
	fiberCmd.AddCommand(fiberAddCmd)
	fiberCmd.AddCommand(fiberRemoveCmd)
	rootCmd.AddCommand(fiberCmd)
}
