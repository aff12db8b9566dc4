package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var (
	goalCalories int
	goalProtein  float64
	goalFiber    float64
	goalWater    int
	goalWeight   float64
	goalSteps    int
	goalPace     string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "View or edit daily targets",
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			g := tr.Goals()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Calories: %d kcal\n", g.Calories)
			fmt.Fprintf(out, "Protein: %.0fg\n", g.ProteinG)
			fmt.Fprintf(out, "Fiber: %.0fg\n", g.FiberG)
			fmt.Fprintf(out, "Water: %d ml\n", g.WaterML)
			fmt.Fprintf(out, "Weight: %.1f kg\n", g.WeightKg)
			fmt.Fprintf(out, "Steps: %d\n", g.Steps)
			if g.Pace != "" {
				fmt.Fprintf(out, "Pace: %s\n", g.Pace)
			}
			return nil
		})
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the targets record; unset flags keep their current value",
	RunE: func(cmd *cobra.Command, args []string) error {
		pace, err := parsePace(goalPace)
		if err != nil {
			return err
		}
		return withTracker(func(tr *tracker.Tracker) error {
			g := tr.Goals()
			if cmd.Flags().Changed("calories") {
				g.Calories = goalCalories
			}
			if cmd.Flags().Changed("protein") {
				g.ProteinG = goalProtein
			}
			if cmd.Flags().Changed("fiber") {
				g.FiberG = goalFiber
			}
			if cmd.Flags().Changed("water") {
				g.WaterML = goalWater
			}
			if cmd.Flags().Changed("weight") {
				g.WeightKg = goalWeight
			}
			if cmd.Flags().Changed("steps") {
				g.Steps = goalSteps
			}
			if cmd.Flags().Changed("pace") {
				g.Pace = pace
			}
			if err := tr.UpdateGoals(g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated")
			return nil
		})
	},
}

func parsePace(raw string) (model.Pace, error) {
	switch model.Pace(raw) {
	case "", model.PaceSlow, model.PaceModerate, model.PaceFast:
		return model.Pace(raw), nil
	default:
		return "", fmt.Errorf("invalid pace %q (expected slow, moderate, or fast)", raw)
	}
}

func init() {
	goalsSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calories (kcal)")
	goalsSetCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Daily protein (g)")
	goalsSetCmd.Flags().Float64Var(&goalFiber, "fiber", 0, "Daily fiber (g)")
	goalsSetCmd.Flags().IntVar(&goalWater, "water", 0, "Daily water (ml)")
	goalsSetCmd.Flags().Float64Var(&goalWeight, "weight", 0, "Target weight (kg)")
	goalsSetCmd.Flags().IntVar(&goalSteps, "steps", 0, "Daily steps")
	goalsSetCmd.Flags().StringVar(&goalPace, "pace", "", "Pace: slow, moderate, or fast")
	goalsCmd.AddCommand(goalsShowCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}
