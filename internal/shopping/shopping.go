// Package shopping turns the current goals into a recommended grocery list.
// The mapping is a fixed table: no randomness, no external lookups, so two
// calls with the same goals produce the same items.
package shopping

import "github.com/saadjs/glp-cli/internal/model"

const (
	proteinGoalThresholdG = 100
	fiberGoalThresholdG   = 25
)

var proteinItems = []model.ShoppingItem{
	{ID: "1", Name: "Greek Yogurt (0% Fat)", Category: model.CategoryProtein, Reason: "Essential for protein goal"},
	{ID: "2", Name: "Chicken Breast", Category: model.CategoryProtein, Reason: "High protein, low fat"},
	{ID: "3", Name: "Whey/Plant Protein", Category: model.CategoryProtein, Reason: "Quick post-workout intake"},
}

var fiberItems = []model.ShoppingItem{
	{ID: "4", Name: "Chia Seeds", Category: model.CategoryFiber, Reason: "Digestion aid for GLP-1"},
	{ID: "5", Name: "Raspberries", Category: model.CategoryFiber, Reason: "High fiber fruit"},
	{ID: "6", Name: "Oats", Category: model.CategoryFiber, Reason: "Sustained energy"},
}

var baseItems = []model.ShoppingItem{
	{ID: "7", Name: "Electrolyte Powder", Category: model.CategoryHydration, Reason: "Prevents headaches"},
	{ID: "8", Name: "Ginger Tea", Category: model.CategorySnack, Reason: "Nausea relief"},
}

// Generate builds the list for the given goals. Every item starts unchecked;
// the caller replaces any previous list wholesale.
func Generate(goals model.UserGoals) []model.ShoppingItem {
	var list []model.ShoppingItem
	if goals.ProteinG > proteinGoalThresholdG {
		list = append(list, proteinItems...)
	}
	if goals.FiberG > fiberGoalThresholdG {
		list = append(list, fiberItems...)
	}
	list = append(list, baseItems...)
	return list
}
