package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add water in milliliters (daily total caps at 5000)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseIntArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddWater(ml); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml today\n", tr.Today().WaterIntakeML)
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove <ml>",
	Short: "Undo a water entry (daily total floors at 0)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml, err := parseIntArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddWater(-ml); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml today\n", tr.Today().WaterIntakeML)
			return nil
		})
	},
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRemoveCmd)
	rootCmd.AddCommand(waterCmd)
}
