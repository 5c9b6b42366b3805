package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gobim/internal/app"
	"github.com/philipparndt/gobim/pkg/bim"
	"github.com/philipparndt/gobim/version"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gobim",
	Short: "A CLI tool for inspecting building models",
	Long: `gobim extracts the individual building components of a .gbm model
file and reports their identity, category and spatial properties.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log load progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadModel loads a model file headless and returns the controller with
// the snapshot installed.
func loadModel(filename string) (*app.Controller, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var log *zap.Logger
	if verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	controller := app.NewController(cfg, bim.NewFileRuntime(), nil, log)
	task, err := controller.StartLoad(filename)
	if err != nil {
		return nil, err
	}
	if result := task.Wait(); result.Err != nil {
		return nil, result.Err
	}
	controller.ApplyLoaded()
	return controller, nil
}

func fail(err error) {
	title, message := bim.UserReport(err)
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	os.Exit(1)
}
