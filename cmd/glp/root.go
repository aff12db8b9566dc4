package glp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "glp",
	Short: "glp tracks GLP-1 treatment habits from your terminal",
	Long:  "glp is a local-first companion for GLP-1 weight-loss treatment: log water, protein, fiber, activity, weight, medication, and symptoms; review weekly reports; and ask the AI coach.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite state database")
}
