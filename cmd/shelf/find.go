package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopkit/shelfgraph/internal/explain"
	"github.com/shopkit/shelfgraph/internal/recommend"
)

var (
	findMaxPrice float64
	findTags     []string
	findBrand    string
)

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().Float64Var(&findMaxPrice, "max-price", 0, "Maximum price (0 for no limit)")
	findCmd.Flags().StringSliceVar(&findTags, "tags", nil, "Required attributes (candidate must have all)")
	findCmd.Flags().StringVar(&findBrand, "brand", "", "Preferred brand ID")
}

// Alternative is one recommended substitute in the find response.
type Alternative struct {
	Product      ProductInfo           `json:"product"`
	Score        float64               `json:"score"`
	Distance     int                   `json:"distance"`
	Path         []string              `json:"path,omitempty"`
	Explanations []explain.Explanation `json:"explanations"`
}

// FindResponse is the response for the find command.
type FindResponse struct {
	Product      ProductInfo   `json:"product"`
	InStock      bool          `json:"in_stock"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
	Total        int           `json:"total"`
}

var findCmd = &cobra.Command{
	Use:   "find <product-id>",
	Short: "Find substitutes for an out-of-stock product",
	Long: `Find substitute products for the given product.

If the product is in stock, it is reported as available and no search runs.
Otherwise the graph is searched for up to 3 scored alternatives, each with
rule-based explanations.

Hard constraints (--max-price, --tags) exclude candidates outright;
--brand adds a scoring preference without excluding anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	productID := args[0]
	repoRoot := mustFindRepository()
	cfg := mustLoadConfig(repoRoot)
	g := mustLoadGraph(repoRoot)

	engine := recommend.New(g)

	availability := engine.Check(productID)
	if !availability.Found {
		exitWithError(ExitDataError, "product %q not found in catalog", productID)
	}

	resp := FindResponse{
		Product: productInfo(availability.Product),
		InStock: availability.InStock,
	}

	// In stock: answer directly, no traversal.
	if availability.InStock {
		return outputFind(cfg.Currency, resp)
	}

	constraints := recommend.Constraints{
		MaxPrice:       findMaxPrice,
		RequiredTags:   findTags,
		PreferredBrand: findBrand,
	}

	for _, c := range engine.FindAlternatives(productID, constraints) {
		resp.Alternatives = append(resp.Alternatives, Alternative{
			Product:      productInfo(c.Product),
			Score:        c.Score,
			Distance:     c.Distance,
			Path:         c.Path,
			Explanations: explain.Generate(c, availability.Product, constraints, g),
		})
	}
	resp.Total = len(resp.Alternatives)

	return outputFind(cfg.Currency, resp)
}

func outputFind(currency string, resp FindResponse) error {
	if !humanOutput {
		return outputJSON(resp)
	}

	if resp.InStock {
		outputHuman("%s is in stock (%s%v)\n", resp.Product.Name, currency, resp.Product.Price)
		return nil
	}

	outputHuman("%s is out of stock\n", resp.Product.Name)
	if resp.Total == 0 {
		outputHuman("No suitable alternatives found. Try relaxing the constraints.\n")
		return nil
	}

	outputHuman("Found %d alternative(s):\n", resp.Total)
	for i, alt := range resp.Alternatives {
		outputHuman("\n%d. %s  %s%v  (score %.0f)\n", i+1, alt.Product.Name, currency, alt.Product.Price, alt.Score)
		if len(alt.Product.Attributes) > 0 {
			outputHuman("   attributes: %s\n", strings.Join(alt.Product.Attributes, ", "))
		}
		for _, e := range alt.Explanations {
			outputHuman("   - [%s] %s\n", e.Rule, e.Text)
		}
	}
	return nil
}
