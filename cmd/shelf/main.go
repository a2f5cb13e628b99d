// Package main provides the shelf CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/config"
	"github.com/shopkit/shelfgraph/internal/graph"
	"github.com/shopkit/shelfgraph/internal/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Product substitution assistant for shopkeepers",
	Long: `shelf recommends substitutes when a requested product is out of stock.

The catalog is a small knowledge graph of products, categories, and brands
(IS_A, HAS_BRAND, SIMILAR_TO relations). Substitutes are found by BFS over
the graph, filtered against hard constraints (stock, price limit, required
attributes), scored, ranked, and returned with rule-based explanations.

Data is stored in git-versionable JSONL with ephemeral SQLite for queries.
All commands output JSON by default for agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// repository. Checks global config catalog_path first, then the current
// working directory.
func getStartingDirectory() (string, int) {
	if root := config.GetCatalogPath(); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindRepository finds and validates the repository, exits on error.
// Returns the repository root path.
func mustFindRepository() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v\n\nRun 'shelf init' to create one.", err)
	}
	return repoRoot
}

// mustLoadConfig loads configuration, exits on error.
func mustLoadConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}

// mustLoadGraph builds the in-memory graph from the JSONL store, exits on
// error.
func mustLoadGraph(repoRoot string) *graph.Graph {
	g, err := storage.LoadGraph(config.NodesPath(repoRoot), config.EdgesPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "loading catalog: %v", err)
	}
	return g
}

// mustOpenDatabase opens the SQLite cache, exits on error.
// The caller is responsible for calling Close() on the returned DB.
func mustOpenDatabase(repoRoot string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustSaveGraph writes the graph back to the JSONL store, exits on error.
func mustSaveGraph(repoRoot string, g *graph.Graph) {
	if err := storage.SaveGraph(config.NodesPath(repoRoot), config.EdgesPath(repoRoot), g); err != nil {
		exitWithError(ExitError, "saving catalog: %v", err)
	}
}
