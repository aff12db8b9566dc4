package glp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/tracker"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in; run `glp onboard` afterwards if no profile exists yet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(args[0])
		if email == "" {
			return fmt.Errorf("email is required")
		}
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.Login(email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", email)
			if tr.Profile() == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run `glp onboard` to finish setup.")
			}
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and erase all local data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			if err := tr.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out. Local data erased.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
