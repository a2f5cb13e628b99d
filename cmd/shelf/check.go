package main

import (
	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/recommend"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

// CheckResponse is the response for the check command.
type CheckResponse struct {
	Product ProductInfo `json:"product"`
	InStock bool        `json:"in_stock"`
}

var checkCmd = &cobra.Command{
	Use:   "check <product-id>",
	Short: "Check whether a product is in stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	productID := args[0]
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	g := mustLoadGraph(repoRoot)

	availability := recommend.New(g).Check(productID)
	if !availability.Found {
		exitWithError(ExitDataError, "product %q not found in catalog", productID)
	}

	resp := CheckResponse{
		Product: productInfo(availability.Product),
		InStock: availability.InStock,
	}

	if humanOutput {
		status := "out of stock"
		if resp.InStock {
			status = "in stock"
		}
		outputHuman("%s (%s%v): %s\n", resp.Product.Name, cfg.Currency, resp.Product.Price, status)
		return nil
	}
	return outputJSON(resp)
}
