package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var medDate string

var medCmd = &cobra.Command{
	Use:   "med",
	Short: "Track medication adherence",
}

var medToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the taken flag for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			date := tr.TodayDate()
			if medDate != "" {
				parsed, err := model.ParseDate(medDate)
				if err != nil {
					return err
				}
				date = parsed
			}
			if err := tr.ToggleMedication(date); err != nil {
				return err
			}
			taken := tr.Medication().History[date.String()]
			status := "not taken"
			if taken {
				status = "taken"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, status)
			return nil
		})
	},
}

var medShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the schedule and the last week of adherence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			meds := tr.Medication()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, %s (injection day: %s)\n",
				meds.DrugName, meds.Dosage, meds.Frequency, weekdayName(meds.InjectionDay))

			rows := make([][]string, 0, 7)
			for offset := 6; offset >= 0; offset-- {
				day := tr.TodayDate().AddDays(-offset)
				status := "-"
				if meds.History[day.String()] {
					status = "taken"
				}
				rows = append(rows, []string{day.WeekdayShort(), day.String(), status})
			}
			fmt.Fprintln(out, renderTable([]string{"Day", "Date", "Status"}, rows))
			return nil
		})
	},
}

// weekdayName maps the schedule's 0-6 injection day (0 = Sunday).
func weekdayName(day int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day >= len(names) {
		return "unknown"
	}
	return names[day]
}

func init() {
	medToggleCmd.Flags().StringVar(&medDate, "date", "", "Date YYYY-MM-DD (default today)")
	medCmd.AddCommand(medToggleCmd)
	medCmd.AddCommand(medShowCmd)
	rootCmd.AddCommand(medCmd)
}
