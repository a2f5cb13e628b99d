package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/storage"
)

var (
	listInStock   bool
	listAttribute string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listInStock, "in-stock", false, "Only list products currently in stock")
	listCmd.Flags().StringVar(&listAttribute, "attribute", "", "Only list products with this attribute tag")
}

// ListResponse is the response for the list command.
type ListResponse struct {
	Products []storage.ProductRow `json:"products"`
	Total    int                  `json:"total"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in the catalog",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	db := mustOpenDatabase(repoRoot)
	defer db.Close()

	var products []storage.ProductRow
	var err error
	if listAttribute != "" {
		products, err = db.GetProductsWithAttribute(listAttribute)
	} else {
		products, err = db.GetProducts(listInStock)
	}
	if err != nil {
		exitWithError(ExitError, "listing products: %v", err)
	}

	if listAttribute != "" && listInStock {
		filtered := products[:0]
		for _, p := range products {
			if p.InStock {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if humanOutput {
		for _, p := range products {
			status := "out of stock"
			if p.InStock {
				status = "in stock"
			}
			outputHuman("%-26s %-30s %s%-8v %s", p.ID, p.Name, cfg.Currency, p.Price, status)
			if len(p.Attributes) > 0 {
				outputHuman("  [%s]", strings.Join(p.Attributes, ", "))
			}
			outputHuman("\n")
		}
		outputHuman("%d product(s)\n", len(products))
		return nil
	}
	return outputJSON(ListResponse{Products: products, Total: len(products)})
}
