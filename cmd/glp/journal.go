package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var journalDate string

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List the food entries for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			date := tr.TodayDate()
			if journalDate != "" {
				parsed, err := model.ParseDate(journalDate)
				if err != nil {
					return err
				}
				date = parsed
			}

			log, found := findLog(tr, date)
			out := cmd.OutOrStdout()
			if !found || len(log.Foods) == 0 {
				fmt.Fprintf(out, "No food logged for %s\n", date)
				return nil
			}

			rows := make([][]string, 0, len(log.Foods))
			for _, food := range log.Foods {
				rows = append(rows, []string{
					food.Timestamp.Local().Format("15:04"),
					food.Name,
					fmt.Sprintf("%.0f", food.Calories),
					fmt.Sprintf("%.1f", food.ProteinG),
					fmt.Sprintf("%.1f", food.CarbsG),
					fmt.Sprintf("%.1f", food.FatG),
					fmt.Sprintf("%.1f", food.FiberG),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Time", "Food", "Kcal", "Protein", "Carbs", "Fat", "Fiber"},
				rows, 3, 4, 5, 6, 7))
			return nil
		})
	},
}

func findLog(tr *tracker.Tracker, date model.Date) (model.DailyLog, bool) {
	if date.Equal(tr.Today().Date) {
		return tr.Today(), true
	}
	for _, entry := range tr.History() {
		if entry.Date.Equal(date) {
			return entry, true
		}
	}
	return model.DailyLog{}, false
}

func init() {
	journalCmd.Flags().StringVar(&journalDate, "date", "", "Date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(journalCmd)
}
