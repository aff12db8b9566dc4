package glp

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's log against the daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			today := tr.Today()
			goals := tr.Goals()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Date: %s\n", today.Date)
			fmt.Fprintf(out, "Water: %d / %d ml\n", today.WaterIntakeML, goals.WaterML)
			fmt.Fprintf(out, "Calories: %d / %d kcal (burned %d)\n",
				today.CaloriesConsumed, goals.Calories, today.CaloriesBurned)
			fmt.Fprintf(out, "Protein: %.0f / %.0f g\n", today.ProteinConsumedG, goals.ProteinG)
			fmt.Fprintf(out, "Fiber: %.0f / %.0f g\n", today.FiberConsumedG, goals.FiberG)
			fmt.Fprintf(out, "Steps: %d / %d | Active: %d min\n",
				today.StepsTaken, goals.Steps, today.ActiveMinutes)
			if today.WeightKg > 0 {
				fmt.Fprintf(out, "Weight: %.1f kg (target %.1f)\n", today.WeightKg, goals.WeightKg)
			}
			if today.MedicationTaken {
				fmt.Fprintln(out, "Medication: taken")
			} else {
				fmt.Fprintln(out, "Medication: not taken")
			}
			if today.Symptoms != nil {
				fmt.Fprintf(out, "Symptoms: %d recorded\n", len(today.Symptoms.Symptoms))
			}
			if start, active := tr.FastingStart(); active {
				fmt.Fprintf(out, "Fasting: %s elapsed\n", time.Since(start).Round(time.Minute))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
