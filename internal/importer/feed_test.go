package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopkit/shelfgraph/internal/graph"
)

const feedBody = `{
	"nodes": [
		{"id": "cat_milk", "type": "category", "data": {"name": "Milk"}},
		{"id": "prod_new_milk", "type": "product", "data": {
			"name": "New Milk 1L", "price": 48, "in_stock": true
		}}
	],
	"edges": [
		{"from": "prod_new_milk", "to": "cat_milk", "relation": "IS_A", "weight": 1}
	]
}`

func TestFeedClient_Fetch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	client := NewFeedClient(srv.URL, WithAPIKey("test-key"))
	nodes, edges, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if len(nodes) != 2 || len(edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 2, 1", len(nodes), len(edges))
	}
	if nodes[1].Type != graph.NodeProduct || nodes[1].Product.Price != 48 {
		t.Errorf("nodes[1] = %+v", nodes[1])
	}
	if edges[0].Relation != graph.RelationIsA {
		t.Errorf("edges[0] = %+v", edges[0])
	}
}

func TestFeedClient_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewFeedClient(srv.URL)
	if _, _, err := client.Fetch(context.Background()); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestMerge(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.NewCategory("cat_milk", "Milk"))
	g.AddNode(graph.NewProduct("prod_old", graph.ProductData{Name: "Old Milk", Price: 50, InStock: true}))
	g.AddEdge("prod_old", "cat_milk", graph.RelationIsA)

	nodes := []*graph.Node{
		graph.NewProduct("prod_new", graph.ProductData{Name: "New Milk", Price: 48, InStock: true}),
		// Re-sent node overwrites by ID.
		graph.NewProduct("prod_old", graph.ProductData{Name: "Old Milk", Price: 52, InStock: true}),
	}
	edges := []graph.Edge{
		{From: "prod_new", To: "cat_milk", Relation: graph.RelationIsA, Weight: 1},
		// Duplicate of an existing edge, skipped.
		{From: "prod_old", To: "cat_milk", Relation: graph.RelationIsA, Weight: 1},
	}

	added := Merge(g, nodes, edges)
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("edges = %d, want 2", g.EdgeCount())
	}
	if got := g.Node("prod_old").Product.Price; got != 52 {
		t.Errorf("prod_old price = %v, want 52 after overwrite", got)
	}
}

func TestMerge_RepeatedImportIsIdempotent(t *testing.T) {
	g := graph.New()
	nodes := []*graph.Node{graph.NewProduct("p1", graph.ProductData{Name: "Milk", Price: 50, InStock: true})}
	edges := []graph.Edge{{From: "p1", To: "c1", Relation: graph.RelationIsA, Weight: 1}}

	if added := Merge(g, nodes, edges); added != 1 {
		t.Fatalf("first merge added %d, want 1", added)
	}
	if added := Merge(g, nodes, edges); added != 0 {
		t.Errorf("second merge added %d, want 0", added)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("edges = %d, want 1", g.EdgeCount())
	}
}
