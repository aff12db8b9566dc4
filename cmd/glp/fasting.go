package glp

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var fastingCmd = &cobra.Command{
	Use:   "fasting",
	Short: "Track fasting sessions",
}

var fastingStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fasting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if _, active := tr.FastingStart(); active {
				fmt.Fprintln(cmd.OutOrStdout(), "A fasting session is already running")
				return nil
			}
			if _, err := tr.ToggleFasting(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fasting started")
			return nil
		})
	},
}

var fastingStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the active fasting session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			start, active := tr.FastingStart()
			if !active {
				fmt.Fprintln(cmd.OutOrStdout(), "No fasting session running")
				return nil
			}
			if _, err := tr.ToggleFasting(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasted for %s\n", time.Since(start).Round(time.Minute))
			return nil
		})
	},
}

var fastingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active fasting session, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			start, active := tr.FastingStart()
			if !active {
				fmt.Fprintln(cmd.OutOrStdout(), "Not fasting")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fasting since %s (%s)\n",
				start.Local().Format("15:04"), time.Since(start).Round(time.Minute))
			return nil
		})
	},
}

func init() {
	fastingCmd.AddCommand(fastingStartCmd)
	fastingCmd.AddCommand(fastingStopCmd)
	fastingCmd.AddCommand(fastingStatusCmd)
	rootCmd.AddCommand(fastingCmd)
}
