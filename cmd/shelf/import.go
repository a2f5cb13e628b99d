package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/config"
	"github.com/shopkit/shelfgraph/internal/importer"
)

var importFeedURL string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importFeedCmd)
	importCmd.AddCommand(importPDFCmd)

	importFeedCmd.Flags().StringVar(&importFeedURL, "url", "", "Feed URL (overrides config)")
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog data from external sources",
}

// ImportResponse is the response for import commands.
type ImportResponse struct {
	Status  string `json:"status"`
	Nodes   int    `json:"nodes,omitempty"`
	Edges   int    `json:"edges,omitempty"`
	Updated int    `json:"updated,omitempty"`
}

var importFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Import the supplier catalog feed",
	Long: `Fetch the supplier catalog feed and merge it into the local catalog.

The feed URL comes from --url, the SHELF_FEED_URL environment variable, the
repository config, or the global config, in that order. An API key is read
from SHELF_FEED_API_KEY or the global config.`,
	RunE: runImportFeed,
}

func runImportFeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)

	url := importFeedURL
	if url == "" {
		url = config.GetFeedURL()
	}
	if url == "" {
		url = cfg.FeedURL
	}
	if url == "" {
		exitWithError(ExitConfigError, "no feed URL configured (set --url, SHELF_FEED_URL, or feed_url in config)")
	}

	client := importer.NewFeedClient(url, importer.WithAPIKey(config.GetFeedAPIKey()))
	nodes, edges, err := client.Fetch(context.Background())
	if err != nil {
		exitWithError(ExitError, "fetching feed: %v", err)
	}

	g := mustLoadGraph(repoRoot)
	added := importer.Merge(g, nodes, edges)
	mustSaveGraph(repoRoot, g)

	db := mustOpenDatabase(repoRoot)
	defer db.Close()
	if _, _, err := db.Rebuild(config.NodesPath(repoRoot), config.EdgesPath(repoRoot)); err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		outputHuman("Imported %d node(s), %d new edge(s) from feed\n", len(nodes), added)
		return nil
	}
	return outputJSON(ImportResponse{Status: "imported", Nodes: len(nodes), Edges: added})
}

var importPDFCmd = &cobra.Command{
	Use:   "pdf <price-list.pdf>",
	Short: "Update product prices from a supplier PDF price list",
	Long: `Extract "name price" lines from a supplier PDF price list and update
matching products (by exact name) in the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportPDF,
}

func runImportPDF(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()

	updates, err := importer.ParsePriceList(args[0])
	if err != nil {
		exitWithError(ExitDataError, "parsing price list: %v", err)
	}
	if len(updates) == 0 {
		exitWithError(ExitDataError, "no price entries found in %s", args[0])
	}

	g := mustLoadGraph(repoRoot)
	updated := importer.ApplyPrices(g, updates)
	if updated > 0 {
		mustSaveGraph(repoRoot, g)

		db := mustOpenDatabase(repoRoot)
		defer db.Close()
		if _, _, err := db.Rebuild(config.NodesPath(repoRoot), config.EdgesPath(repoRoot)); err != nil {
			exitWithError(ExitError, "rebuilding cache: %v", err)
		}
	}

	if humanOutput {
		outputHuman("Updated %d product price(s) from %d entries\n", updated, len(updates))
		return nil
	}
	return outputJSON(ImportResponse{Status: "imported", Updated: updated})
}
