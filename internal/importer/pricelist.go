package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// PriceUpdate is one "name price" entry from a supplier price list.
type PriceUpdate struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// priceLine matches "Product Name  123" or "Product Name  123.50", with the
// price as the last token on the line.
var priceLine = regexp.MustCompile(`^(.*\S)\s+(\d+(?:\.\d+)?)$`)

// ParsePriceList extracts price entries from a PDF price list. Lines that
// don't end in a price are skipped; a PDF with no matching lines yields an
// empty slice, not an error.
func ParsePriceList(filePath string) ([]PriceUpdate, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var updates []PriceUpdate
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		updates = append(updates, parsePriceLines(text)...)
	}

	return updates, nil
}

// parsePriceLines extracts price entries from plain text, one per line.
func parsePriceLines(text string) []PriceUpdate {
	var updates []PriceUpdate
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		m := priceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		price, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		updates = append(updates, PriceUpdate{Name: m[1], Price: price})
	}
	return updates
}

// ApplyPrices updates product prices in the graph by exact name match.
// Returns the number of products updated.
func ApplyPrices(g *graph.Graph, updates []PriceUpdate) int {
	byName := make(map[string]*graph.Node)
	for _, n := range g.NodesByType(graph.NodeProduct) {
		byName[n.Product.Name] = n
	}

	updated := 0
	for _, u := range updates {
		if n, ok := byName[u.Name]; ok && n.Product.Price != u.Price {
			n.Product.Price = u.Price
			updated++
		}
	}
	return updated
}
