package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobim/internal/app"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the component category table",
	Long:  "Print the built-in type-code table merged with the overrides of the active config file.",
	Args:  cobra.NoArgs,
	Run:   runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		fail(err)
	}

	table := cfg.CategoryTable()
	codes := make([]int32, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	fmt.Printf("%-8s %s\n", "Code", "Category")
	for _, code := range codes {
		fmt.Printf("%-8d %s\n", code, table[code])
	}
}
