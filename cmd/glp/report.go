package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/analytics"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Weekly chart data and the clinical summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			series := analytics.Series(tr.History(), tr.Today(), tr.Profile())
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(series))
			for _, p := range series {
				rows = append(rows, []string{
					p.Day,
					p.Date.String(),
					fmt.Sprintf("%.1f", p.WeightKg),
					fmt.Sprintf("%d", p.Calories),
					fmt.Sprintf("%d", p.Burned),
					fmt.Sprintf("%.0f", p.ProteinG),
					fmt.Sprintf("%d", p.SymptomScore),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Day", "Date", "Weight", "Kcal In", "Kcal Out", "Protein", "Symptoms"},
				rows, 3, 4, 5, 6, 7))

			fmt.Fprintln(out)
			fmt.Fprintln(out, analytics.ClinicalNote(series, tr.Goals()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
