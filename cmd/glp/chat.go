package glp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var chatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask the AI coach; today's log and goals are sent as context",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("question is required")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			client, err := geminiClient(tr)
			if err != nil {
				return err
			}
			answer := client.HealthAdvice(cmd.Context(), coachContext(tr), question)
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		})
	},
}

// coachContext summarizes the state the coach should know about.
func coachContext(tr *tracker.Tracker) string {
	today := tr.Today()
	goals := tr.Goals()
	meds := tr.Medication()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today (%s): %d kcal consumed, %.0fg protein, %.0fg fiber, %d ml water, %d steps.\n",
		today.Date, today.CaloriesConsumed, today.ProteinConsumedG, today.FiberConsumedG,
		today.WaterIntakeML, today.StepsTaken)
	fmt.Fprintf(&sb, "Daily goals: %d kcal, %.0fg protein, %.0fg fiber, %d ml water, %d steps.\n",
		goals.Calories, goals.ProteinG, goals.FiberG, goals.WaterML, goals.Steps)
	fmt.Fprintf(&sb, "Medication: %s %s (%s), taken today: %v.\n",
		meds.DrugName, meds.Dosage, meds.Frequency, today.MedicationTaken)
	if profile := tr.Profile(); profile != nil {
		fmt.Fprintf(&sb, "User: start weight %.1f kg", profile.StartWeightKg)
		if today.WeightKg > 0 {
			fmt.Fprintf(&sb, ", current weight %.1f kg", today.WeightKg)
		}
		sb.WriteString(".\n")
	}
	if today.Symptoms != nil && len(today.Symptoms.Symptoms) > 0 {
		parts := make([]string, 0, len(today.Symptoms.Symptoms))
		for name, severity := range today.Symptoms.Symptoms {
			parts = append(parts, fmt.Sprintf("%s (%d/3)", name, severity))
		}
		fmt.Fprintf(&sb, "Reported symptoms today: %s.\n", strings.Join(parts, ", "))
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
