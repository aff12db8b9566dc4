package glp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var symptomNotes string

var symptomCmd = &cobra.Command{
	Use:   "symptom",
	Short: "Track medication side effects",
}

var symptomLogCmd = &cobra.Command{
	Use:   "log <name=severity>...",
	Short: "Record today's symptoms (severity 0-3); replaces any earlier entry for the day",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symptoms := make(map[string]int, len(args))
		for _, arg := range args {
			name, rawSeverity, ok := strings.Cut(arg, "=")
			name = strings.ToLower(strings.TrimSpace(name))
			if !ok || name == "" {
				return fmt.Errorf("invalid symptom %q (expected name=severity)", arg)
			}
			severity, err := strconv.Atoi(strings.TrimSpace(rawSeverity))
			if err != nil || severity < 0 || severity > 3 {
				return fmt.Errorf("invalid severity for %s (expected 0-3)", name)
			}
			symptoms[name] = severity
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.LogSymptom(symptoms, strings.TrimSpace(symptomNotes)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d symptom(s) for %s\n", len(symptoms), tr.Today().Date)
			return nil
		})
	},
}

func init() {
	symptomLogCmd.Flags().StringVar(&symptomNotes, "notes", "", "Free-text notes")
	symptomCmd.AddCommand(symptomLogCmd)
	rootCmd.AddCommand(symptomCmd)
}
