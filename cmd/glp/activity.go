package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var (
	activitySteps    int
	activityMinutes  int
	activityCalories int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Track movement",
}

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add steps, active minutes, and calories burned",
	RunE: func(cmd *cobra.Command, args []string) error {
		if activitySteps < 0 || activityMinutes < 0 || activityCalories < 0 {
			return fmt.Errorf("activity values must be >= 0")
		}
		if activitySteps == 0 && activityMinutes == 0 && activityCalories == 0 {
			return fmt.Errorf("nothing to add: set --steps, --minutes, or --calories")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.AddActivity(activitySteps, activityMinutes, activityCalories); err != nil {
				return err
			}
			today := tr.Today()
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %d steps | %d min | %d kcal burned today\n",
				today.StepsTaken, today.ActiveMinutes, today.CaloriesBurned)
			return nil
		})
	},
}

func init() {
	activityAddCmd.Flags().IntVar(&activitySteps, "steps", 0, "Steps taken")
	activityAddCmd.Flags().IntVar(&activityMinutes, "minutes", 0, "Active minutes")
	activityAddCmd.Flags().IntVar(&activityCalories, "calories", 0, "Calories burned")
	activityCmd.AddCommand(activityAddCmd)
	rootCmd.AddCommand(activityCmd)
}
