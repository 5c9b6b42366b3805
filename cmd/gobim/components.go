package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobim/pkg/analysis"
	"github.com/philipparndt/gobim/pkg/model"
)

var componentCategory string

var componentsCmd = &cobra.Command{
	Use:   "components [file]",
	Short: "List the components of a building model",
	Long:  "List every extracted component with its id, category, name and bounding box.",
	Args:  cobra.ExactArgs(1),
	Run:   runComponents,
}

func init() {
	componentsCmd.Flags().StringVar(&componentCategory, "category", "", "only list components of this category")
	rootCmd.AddCommand(componentsCmd)
}

func runComponents(cmd *cobra.Command, args []string) {
	controller, err := loadModel(args[0])
	if err != nil {
		fail(err)
	}
	defer controller.Shutdown()

	components := controller.Components()
	if componentCategory != "" {
		components = analysis.FindByCategory(components, componentCategory)
	}

	fmt.Printf("%-8s %-20s %-30s %s\n", "ID", "Category", "Name", "Bounds")
	for _, c := range components {
		fmt.Printf("%-8d %-20s %-30s %s\n", c.ID, c.Category, c.Name, formatBounds(c))
	}
	fmt.Printf("\n%d component(s)\n", len(components))
}

func formatBounds(c *model.Component) string {
	bounds, ok := c.WorldBounds()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s .. %s", analysis.FormatVector(bounds.Min), analysis.FormatVector(bounds.Max))
}
