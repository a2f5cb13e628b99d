package dataset

import (
	"strings"
	"testing"

	"github.com/shopkit/shelfgraph/internal/graph"
)

func TestSample_Counts(t *testing.T) {
	g := Sample()

	if got := g.NodeCount(graph.NodeProduct); got != 14 {
		t.Errorf("products = %d, want 14", got)
	}
	if got := g.NodeCount(graph.NodeCategory); got != 8 {
		t.Errorf("categories = %d, want 8", got)
	}
	if got := g.NodeCount(graph.NodeBrand); got != 7 {
		t.Errorf("brands = %d, want 7", got)
	}
	// 18 IS_A + 14 HAS_BRAND + 6 SIMILAR_TO
	if got := g.EdgeCount(); got != 38 {
		t.Errorf("edges = %d, want 38", got)
	}
}

func TestSample_Structure(t *testing.T) {
	g := Sample()

	if got := g.CategoryOf("prod_amul_taaza"); got != "cat_milk" {
		t.Errorf("category of prod_amul_taaza = %q, want cat_milk", got)
	}
	if got := g.BrandOf("prod_amul_taaza"); got != "brand_amul" {
		t.Errorf("brand of prod_amul_taaza = %q, want brand_amul", got)
	}
	if got := g.CategoryOf("cat_milk"); got != "cat_dairy" {
		t.Errorf("parent of cat_milk = %q, want cat_dairy", got)
	}

	taaza := g.Node("prod_amul_taaza")
	if taaza == nil || taaza.Product.InStock {
		t.Error("prod_amul_taaza should exist and be out of stock")
	}

	similar := g.Outgoing("prod_amul_gold", graph.RelationSimilarTo)
	if len(similar) != 1 || similar[0].To != "prod_mother_dairy_full" || similar[0].Weight != 0.9 {
		t.Errorf("SIMILAR_TO from prod_amul_gold = %+v", similar)
	}
}

func TestLoadReader(t *testing.T) {
	doc := `{
		"nodes": [
			{"id": "cat_tea", "type": "category", "data": {"name": "Tea"}},
			{"id": "brand_tata", "type": "brand", "data": {"name": "Tata"}},
			{"id": "prod_tata_gold", "type": "product", "data": {
				"name": "Tata Tea Gold 500g", "price": 290, "in_stock": true,
				"attributes": ["leaf", "strong"]
			}},
			{"id": "prod_tata_agni", "type": "product", "data": {
				"name": "Tata Tea Agni 500g", "price": 180, "in_stock": false
			}}
		],
		"edges": [
			{"from": "prod_tata_gold", "to": "cat_tea", "relation": "IS_A"},
			{"from": "prod_tata_gold", "to": "brand_tata", "relation": "HAS_BRAND"},
			{"from": "prod_tata_gold", "to": "prod_tata_agni", "relation": "SIMILAR_TO", "weight": 0.7}
		]
	}`

	g, err := LoadReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if g.NodeCount("") != 4 {
		t.Errorf("nodes = %d, want 4", g.NodeCount(""))
	}

	gold := g.Node("prod_tata_gold")
	if gold == nil {
		t.Fatal("missing prod_tata_gold")
	}
	if gold.Product.Price != 290 || len(gold.Product.Attributes) != 2 {
		t.Errorf("product data = %+v", gold.Product)
	}

	edges := g.Outgoing("prod_tata_gold", "")
	if len(edges) != 3 {
		t.Fatalf("edges = %d, want 3", len(edges))
	}
	if edges[0].Weight != graph.DefaultWeight {
		t.Errorf("unweighted edge Weight = %v, want default %v", edges[0].Weight, graph.DefaultWeight)
	}
	if edges[2].Weight != 0.7 {
		t.Errorf("weighted edge Weight = %v, want 0.7", edges[2].Weight)
	}
}

func TestLoadReader_BadJSON(t *testing.T) {
	if _, err := LoadReader(strings.NewReader("{not json")); err == nil {
		t.Error("expected parse error")
	}
}
