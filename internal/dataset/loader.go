package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// edgeRecord is the wire form of an edge in a catalog file. Weight is
// optional and defaults to 1.0.
type edgeRecord struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Relation string   `json:"relation"`
	Weight   *float64 `json:"weight"`
}

// catalogFile is a {nodes, edges} JSON document.
type catalogFile struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

// Load reads a catalog file and builds a graph from it.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	g, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return g, nil
}

// LoadReader builds a graph from a JSON catalog document. Records are applied
// in listed order; node records with duplicate IDs overwrite (last wins), and
// edges referencing absent nodes are kept as-is.
func LoadReader(r io.Reader) (*graph.Graph, error) {
	var catalog catalogFile
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	g := graph.New()
	for i := range catalog.Nodes {
		g.AddNode(&catalog.Nodes[i])
	}
	for _, e := range catalog.Edges {
		weight := graph.DefaultWeight
		if e.Weight != nil {
			weight = *e.Weight
		}
		g.AddWeightedEdge(e.From, e.To, e.Relation, weight)
	}
	return g, nil
}
