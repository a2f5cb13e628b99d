package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/config"
	"github.com/shopkit/shelfgraph/internal/dataset"
	"github.com/shopkit/shelfgraph/internal/storage"
)

var initEmpty bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initEmpty, "empty", false, "Initialize without the sample catalog")
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a catalog repository",
	Long: `Initialize a shelfgraph repository at the given path (default: current
directory). Creates the .shelfgraph directory, writes the built-in sample
grocery catalog to JSONL, and builds the SQLite query cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	if config.IsRepository(root) {
		exitWithError(ExitConfigError, "repository already exists at %s", config.ShelfPath(root))
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating repository directories: %v", err)
	}

	cfg := &config.Config{Currency: config.DefaultCurrency}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if initEmpty {
		if err := storage.WriteNodes(config.NodesPath(root), nil); err != nil {
			exitWithError(ExitError, "creating nodes file: %v", err)
		}
		if err := storage.WriteEdges(config.EdgesPath(root), nil); err != nil {
			exitWithError(ExitError, "creating edges file: %v", err)
		}
	} else {
		if err := storage.SaveGraph(config.NodesPath(root), config.EdgesPath(root), dataset.Sample()); err != nil {
			exitWithError(ExitError, "writing sample catalog: %v", err)
		}
	}

	db := mustOpenDatabase(root)
	defer db.Close()
	if _, _, err := db.Rebuild(config.NodesPath(root), config.EdgesPath(root)); err != nil {
		exitWithError(ExitError, "building cache: %v", err)
	}

	if humanOutput {
		outputHuman("Initialized shelfgraph repository at %s\n", config.ShelfPath(root))
		return nil
	}
	return outputJSON(StatusResponse{Status: "initialized", Path: config.ShelfPath(root)})
}
