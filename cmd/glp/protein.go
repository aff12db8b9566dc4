package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var proteinCmd = &cobra.Command{
	Use:   "protein",
	Short: "Track protein intake",
}

var proteinAddCmd = &cobra.Command{
	Use:   "add <grams>",
	Short: "Add protein in grams",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddProtein(grams); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0fg today\n", tr.Today().ProteinConsumedG)
			return nil
		})
	},
}

var proteinRemoveCmd = &cobra.Command{
	Use:   "remove <grams>",
	Short: "Undo a protein entry (daily total floors at 0)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseFloatArg("amount", args[0])
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddProtein(-grams); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0fg today\n", tr.Today().ProteinConsumedG)
			return nil
		})
	},
}

func init() {
	proteinCmd.AddCommand(proteinAddCmd)
	proteinCmd.AddCommand(proteinRemoveCmd)
	rootCmd.AddCommand(proteinCmd)
}
