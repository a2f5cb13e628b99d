package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

// StatsResponse is the response for the stats command.
type StatsResponse struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
	Brands     int `json:"brands"`
	Edges      int `json:"edges"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	counts, err := db.CountByType()
	if err != nil {
		exitWithError(ExitError, "counting nodes: %v", err)
	}
	edges, err := db.CountEdges()
	if err != nil {
		exitWithError(ExitError, "counting edges: %v", err)
	}

	resp := StatsResponse{
		Products:   counts["product"],
		Categories: counts["category"],
		Brands:     counts["brand"],
		Edges:      edges,
	}

	if humanOutput {
		outputHuman("products:   %d\ncategories: %d\nbrands:     %d\nedges:      %d\n",
			resp.Products, resp.Categories, resp.Brands, resp.Edges)
		return nil
	}
	return outputJSON(resp)
}
