package glp

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/provider/gemini"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var (
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodFiber    float64
	foodNotes    string

	scanLog bool
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log meals manually or from a photo",
}

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food entry; today's calorie, protein, and fiber totals update with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(foodName) == "" {
			return fmt.Errorf("--name is required")
		}
		if foodCalories < 0 || foodProtein < 0 || foodCarbs < 0 || foodFat < 0 || foodFiber < 0 {
			return fmt.Errorf("nutrition values must be >= 0")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			logged, err := tr.LogFood(model.FoodItem{
				Name:     strings.TrimSpace(foodName),
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				FiberG:   foodFiber,
				AIAdvice: strings.TrimSpace(foodNotes),
			})
			if err != nil {
				return err
			}
			today := tr.Today()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f kcal)\n", logged.Name, logged.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d kcal | P %.0fg | Fiber %.0fg\n",
				today.CaloriesConsumed, today.ProteinConsumedG, today.FiberConsumedG)
			return nil
		})
	},
}

var foodScanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Estimate nutrition from a food photo via the AI analyzer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		return withTracker(func(tr *tracker.Tracker) error {
			client, err := geminiClient(tr)
			if err != nil {
				return err
			}
			analysis, err := client.AnalyzeFoodImage(cmd.Context(), image, imageMIMEType(args[0]))
			if err != nil {
				if errors.Is(err, gemini.ErrAnalysis) {
					return fmt.Errorf("could not analyze the photo, please retry: %w", err)
				}
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (confidence %.0f%%)\n", analysis.FoodName, analysis.Confidence)
			fmt.Fprintf(out, "Calories: %.0f kcal\n", analysis.Calories)
			fmt.Fprintf(out, "Protein: %.1fg | Carbs: %.1fg | Fat: %.1fg | Fiber: %.1fg\n",
				analysis.ProteinG, analysis.CarbsG, analysis.FatG, analysis.FiberG)

			if !scanLog {
				return nil
			}
			if _, err := tr.LogFood(model.FoodItem{
				Name:     analysis.FoodName,
				Calories: analysis.Calories,
				ProteinG: analysis.ProteinG,
				CarbsG:   analysis.CarbsG,
				FatG:     analysis.FatG,
				FiberG:   analysis.FiberG,
			}); err != nil {
				return err
			}
			today := tr.Today()
			fmt.Fprintf(out, "Logged. Today: %d kcal | P %.0fg | Fiber %.0fg\n",
				today.CaloriesConsumed, today.ProteinConsumedG, today.FiberConsumedG)
			return nil
		})
	},
}

func init() {
	foodLogCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodLogCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories (kcal)")
	foodLogCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g)")
	foodLogCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs (g)")
	foodLogCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat (g)")
	foodLogCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "Fiber (g)")
	foodLogCmd.Flags().StringVar(&foodNotes, "notes", "", "Advisory note to keep with the entry")

	foodScanCmd.Flags().BoolVar(&scanLog, "log", false, "Log the analyzed food right away")

	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodScanCmd)
	rootCmd.AddCommand(foodCmd)
}
