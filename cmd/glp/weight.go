package glp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightSetCmd = &cobra.Command{
	Use:   "set <kg>",
	Short: "Record today's weight in kilograms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Invalid or non-positive input is a silent no-op.
		kg, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil || kg <= 0 {
			return nil
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.UpdateWeight(kg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", tr.Today().WeightKg)
			return nil
		})
	},
}

func init() {
	weightCmd.AddCommand(weightSetCmd)
	rootCmd.AddCommand(weightCmd)
}
