// Package recommend implements substitute discovery: BFS traversal of the
// product graph, constraint filtering, scoring, and ranking.
package recommend

import (
	"sort"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// MaxAlternatives is the number of candidates returned per query.
const MaxAlternatives = 3

// Constraints are the per-query hard and soft preferences. Zero values mean
// unconstrained: MaxPrice 0 is no price limit, empty RequiredTags requires
// nothing, empty PreferredBrand prefers nothing.
type Constraints struct {
	MaxPrice       float64  `json:"max_price,omitempty"`
	RequiredTags   []string `json:"required_tags,omitempty"`
	PreferredBrand string   `json:"preferred_brand,omitempty"`
}

// Candidate is a product discovered during traversal, annotated with its
// score, BFS hop distance from the start, and the relation labels traversed
// to reach it. Reverse-direction hops carry the "reverse_" prefix.
type Candidate struct {
	Product  *graph.Node
	Score    float64
	Distance int
	Path     []string
}

// Availability is the result of the direct availability check.
type Availability struct {
	Found   bool
	InStock bool
	Product *graph.Node
}

// Engine answers substitution queries against a graph. The graph must not be
// mutated while the engine is in use.
type Engine struct {
	g *graph.Graph
}

// New creates an engine over the given graph.
func New(g *graph.Graph) *Engine {
	return &Engine{g: g}
}

// Check resolves a product and reports whether it is available. It never
// traverses the graph.
func (e *Engine) Check(productID string) Availability {
	n := e.g.Node(productID)
	if n == nil || n.Type != graph.NodeProduct {
		return Availability{}
	}
	return Availability{Found: true, InStock: n.Product.InStock, Product: n}
}

// frontier is a pending BFS visit.
type frontier struct {
	id       string
	distance int
	path     []string
}

// FindAlternatives finds substitute products for the given product using BFS
// over the connected component, in both edge directions. Candidates failing
// the hard constraints (score 0) are dropped; survivors are ranked by score
// descending, ties broken by discovery order, and truncated to
// MaxAlternatives. An unknown product ID yields an empty result.
func (e *Engine) FindAlternatives(productID string, constraints Constraints) []Candidate {
	original := e.g.Node(productID)
	if original == nil {
		return nil
	}

	visited := make(map[string]bool)
	queue := []frontier{{id: productID, distance: 0}}

	var candidates []Candidate
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Visited is marked at dequeue, not enqueue. A node reached via two
		// equal-length paths sits in the queue twice; the first dequeue wins
		// and fixes its distance and path.
		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		node := e.g.Node(current.id)
		if node != nil && node.Type == graph.NodeProduct && current.id != productID {
			score := Score(node, original, constraints, current.distance, e.g)
			if score > 0 {
				candidates = append(candidates, Candidate{
					Product:  node,
					Score:    score,
					Distance: current.distance,
					Path:     current.path,
				})
			}
		}

		for _, edge := range e.g.Outgoing(current.id, "") {
			if !visited[edge.To] {
				queue = append(queue, frontier{
					id:       edge.To,
					distance: current.distance + 1,
					path:     appendPath(current.path, edge.Relation),
				})
			}
		}
		for _, edge := range e.g.Incoming(current.id, "") {
			if !visited[edge.From] {
				queue = append(queue, frontier{
					id:       edge.From,
					distance: current.distance + 1,
					path:     appendPath(current.path, graph.ReversePrefix+edge.Relation),
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > MaxAlternatives {
		candidates = candidates[:MaxAlternatives]
	}
	return candidates
}

// appendPath copies the path before extending it. Frontier entries share
// prefixes, so appending in place would corrupt sibling paths.
func appendPath(path []string, label string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, label)
}
