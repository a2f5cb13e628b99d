package storage

import (
	"path/filepath"
	"testing"

	"github.com/shopkit/shelfgraph/internal/dataset"
	"github.com/shopkit/shelfgraph/internal/graph"
)

// rebuiltDB writes the sample catalog to JSONL in a temp dir and rebuilds
// the SQLite cache from it.
func rebuiltDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.jsonl")
	edgesPath := filepath.Join(dir, "edges.jsonl")

	if err := SaveGraph(nodesPath, edgesPath, dataset.Sample()); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}

	db, err := OpenDB(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	nodes, edges, err := db.Rebuild(nodesPath, edgesPath)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if nodes != 29 || edges != 38 {
		t.Fatalf("Rebuild inserted %d nodes, %d edges; want 29, 38", nodes, edges)
	}
	return db
}

func TestDB_GetProducts(t *testing.T) {
	db := rebuiltDB(t)

	all, err := db.GetProducts(false)
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(all) != 14 {
		t.Errorf("len = %d, want 14", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Errorf("products not sorted by name: %q before %q", all[i-1].Name, all[i].Name)
		}
	}

	inStock, err := db.GetProducts(true)
	if err != nil {
		t.Fatalf("GetProducts(inStockOnly): %v", err)
	}
	if len(inStock) != 11 {
		t.Errorf("in-stock len = %d, want 11", len(inStock))
	}
	for _, p := range inStock {
		if !p.InStock {
			t.Errorf("out-of-stock product %s in in-stock listing", p.ID)
		}
	}
}

func TestDB_GetProductsWithAttribute(t *testing.T) {
	db := rebuiltDB(t)

	toned, err := db.GetProductsWithAttribute("toned")
	if err != nil {
		t.Fatalf("GetProductsWithAttribute: %v", err)
	}
	if len(toned) != 2 {
		t.Fatalf("len = %d, want 2", len(toned))
	}
	for _, p := range toned {
		found := false
		for _, a := range p.Attributes {
			if a == "toned" {
				found = true
			}
		}
		if !found {
			t.Errorf("product %s lacks the attribute", p.ID)
		}
	}
}

func TestDB_Counts(t *testing.T) {
	db := rebuiltDB(t)

	counts, err := db.CountByType()
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	want := map[string]int{"product": 14, "category": 8, "brand": 7}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("counts[%s] = %d, want %d", typ, counts[typ], n)
		}
	}

	edges, err := db.CountEdges()
	if err != nil {
		t.Fatalf("CountEdges: %v", err)
	}
	if edges != 38 {
		t.Errorf("edges = %d, want 38", edges)
	}
}

func TestDB_RebuildIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	nodesPath := filepath.Join(dir, "nodes.jsonl")
	edgesPath := filepath.Join(dir, "edges.jsonl")

	g := graph.New()
	g.AddNode(graph.NewProduct("p1", graph.ProductData{Name: "Milk", Price: 54, InStock: true}))
	if err := SaveGraph(nodesPath, edgesPath, g); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}

	db, err := OpenDB(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if _, _, err := db.Rebuild(nodesPath, edgesPath); err != nil {
			t.Fatalf("Rebuild #%d: %v", i+1, err)
		}
	}

	products, err := db.GetProducts(false)
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("len = %d, want 1 (rebuild must not duplicate)", len(products))
	}
}
