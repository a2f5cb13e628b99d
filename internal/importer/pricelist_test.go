package importer

import (
	"testing"

	"github.com/shopkit/shelfgraph/internal/dataset"
	"github.com/shopkit/shelfgraph/internal/graph"
)

func TestParsePriceLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []PriceUpdate
	}{
		{
			name: "integer and decimal prices",
			text: "Amul Taaza Toned Milk 1L 56\nMother Dairy Toned Milk 1L 52.50\n",
			want: []PriceUpdate{
				{Name: "Amul Taaza Toned Milk 1L", Price: 56},
				{Name: "Mother Dairy Toned Milk 1L", Price: 52.5},
			},
		},
		{
			name: "skips lines without a trailing price",
			text: "SUPPLIER PRICE LIST\nEffective from August 2026\nParle-G Biscuit 100g 20\n",
			want: []PriceUpdate{{Name: "Parle-G Biscuit 100g", Price: 20}},
		},
		{
			name: "trims surrounding whitespace",
			text: "   Nestle A+ Slim Milk 1L 62   \n",
			want: []PriceUpdate{{Name: "Nestle A+ Slim Milk 1L", Price: 62}},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "bare number is not an entry",
			text: "42\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePriceLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplyPrices(t *testing.T) {
	g := dataset.Sample()
	taaza := g.Node("prod_amul_taaza")
	oldPrice := taaza.Product.Price

	updates := []PriceUpdate{
		{Name: taaza.Product.Name, Price: oldPrice + 2}, // changed
		{Name: g.Node("prod_parle_g").Product.Name, Price: g.Node("prod_parle_g").Product.Price}, // unchanged
		{Name: "No Such Product 1L", Price: 99}, // unknown name
	}

	updated := ApplyPrices(g, updates)
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}
	if taaza.Product.Price != oldPrice+2 {
		t.Errorf("price = %v, want %v", taaza.Product.Price, oldPrice+2)
	}
}

func TestApplyPrices_EmptyGraph(t *testing.T) {
	g := graph.New()
	if updated := ApplyPrices(g, []PriceUpdate{{Name: "Milk", Price: 50}}); updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
}
