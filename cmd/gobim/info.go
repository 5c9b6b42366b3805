package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobim/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a building model",
	Long:  "Show aggregate information including component count, bounding box, dimensions and a category breakdown.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	controller, err := loadModel(filename)
	if err != nil {
		fail(err)
	}
	defer controller.Shutdown()

	result := analysis.Analyze(controller.Components())
	stats := controller.DecodeStats()

	fmt.Println("Building Model Information")
	fmt.Println("==========================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Components: %d\n", result.ComponentCount)
	if stats.Failed > 0 {
		fmt.Printf("  Skipped (no properties): %d\n", stats.Failed)
	}
	if result.SkippedBounds > 0 {
		fmt.Printf("  Without bounds: %d\n", result.SkippedBounds)
	}
	fmt.Println()

	if result.BoundingBox.IsValid() {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X): %.3f units\n", result.Dimensions.X)
		fmt.Printf("  Depth (Y): %.3f units\n", result.Dimensions.Y)
		fmt.Printf("  Height (Z): %.3f units\n", result.Dimensions.Z)
		fmt.Printf("  Volume: %.3f cubic units\n\n", result.Volume)
	}

	fmt.Println("Categories:")
	for _, row := range result.Categories {
		fmt.Printf("  %-20s %d\n", row.Category, row.Count)
	}

	if result.Largest != nil {
		fmt.Printf("\nLargest component: %s (ID %d)\n", result.Largest.Name, result.Largest.ID)
	}

	if !result.BoundingBox.IsValid() {
		fmt.Fprintln(os.Stderr, "Warning: no component has computable bounds")
	}
}
