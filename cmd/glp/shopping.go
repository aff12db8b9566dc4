package glp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/glp-cli/internal/model"
	"github.com/saadjs/glp-cli/internal/tracker"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Goal-driven grocery recommendations",
}

var shoppingGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild the list from current goals (replaces the old list)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			items, err := tr.RegenerateShopping()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d items\n", len(items))
			printShoppingList(cmd, items)
			return nil
		})
	},
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			items := tr.Shopping()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "List is empty. Run `glp shopping generate`.")
				return nil
			}
			printShoppingList(cmd, items)
			return nil
		})
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Toggle an item's checked flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(tr *tracker.Tracker) error {
			found, err := tr.ToggleShoppingItem(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no shopping item with id %q", args[0])
			}
			printShoppingList(cmd, tr.Shopping())
			return nil
		})
	},
}

func printShoppingList(cmd *cobra.Command, items []model.ShoppingItem) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		rows = append(rows, []string{item.ID, mark, item.Name, string(item.Category), item.Reason})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "", "Item", "Category", "Why"}, rows))
}

func init() {
	shoppingCmd.AddCommand(shoppingGenerateCmd)
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingCheckCmd)
	rootCmd.AddCommand(shoppingCmd)
}
