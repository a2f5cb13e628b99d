package main

import (
	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/config"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

// RebuildResponse is the response for the rebuild command.
type RebuildResponse struct {
	Status string `json:"status"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the SQLite query cache from JSONL",
	RunE:  runRebuild,
}

func runRebuild(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	nodes, edges, err := db.Rebuild(config.NodesPath(repoRoot), config.EdgesPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "rebuilding cache: %v", err)
	}

	if humanOutput {
		outputHuman("Rebuilt cache: %d nodes, %d edges\n", nodes, edges)
		return nil
	}
	return outputJSON(RebuildResponse{Status: "rebuilt", Nodes: nodes, Edges: edges})
}
