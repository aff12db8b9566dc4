package glp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Local configuration",
}

var configKeyCmd = &cobra.Command{
	Use:   "key <api-key>",
	Short: "Store the Gemini API key (GEMINI_API_KEY in the environment wins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.TrimSpace(args[0])
		if key == "" {
			return fmt.Errorf("api key is required")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.SetGeminiKey(key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key stored")
			return nil
		})
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), tr.Theme())
				return nil
			}
			switch args[0] {
			case "light", "dark":
				if err := tr.SetTheme(args[0]); err != nil {
					return err
				}
			case "toggle":
				if _, err := tr.ToggleTheme(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid theme %q (expected light, dark, or toggle)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.Theme())
			return nil
		})
	},
}

func init() {
	configCmd.AddCommand(configKeyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themeCmd)
}
