package glp

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show today's psychology tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		tip := model.PsychologyTips[time.Now().YearDay()%len(model.PsychologyTips)]
		fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]\n%s\n", tip.Title, tip.Category, tip.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tipCmd)
}
