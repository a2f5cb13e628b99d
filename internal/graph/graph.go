package graph

import "sort"

// Graph holds typed nodes and directed, labeled edges. It is built once by a
// loader and treated as read-only during queries; none of the query-path
// methods mutate state.
type Graph struct {
	nodes map[string]*Node
	edges []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node, overwriting any existing node with the same ID.
// Last write wins so that reloading a dataset stays idempotent.
func (g *Graph) AddNode(n *Node) {
	g.nodes[n.ID] = n
}

// AddEdge appends an edge with the default weight. Endpoints are not
// validated; an edge may reference an absent node, which traversal treats as
// a dead end.
func (g *Graph) AddEdge(from, to, relation string) {
	g.AddWeightedEdge(from, to, relation, DefaultWeight)
}

// AddWeightedEdge appends an edge with an explicit weight.
func (g *Graph) AddWeightedEdge(from, to, relation string, weight float64) {
	g.edges = append(g.edges, Edge{From: from, To: to, Relation: relation, Weight: weight})
}

// Node returns the node with the given ID, or nil if absent.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Outgoing returns edges leaving the given node in insertion order. An empty
// relation matches all relations.
func (g *Graph) Outgoing(id, relation string) []Edge {
	var out []Edge
	for _, e := range g.edges {
		if e.From == id && (relation == "" || e.Relation == relation) {
			out = append(out, e)
		}
	}
	return out
}

// Incoming returns edges arriving at the given node in insertion order. An
// empty relation matches all relations.
func (g *Graph) Incoming(id, relation string) []Edge {
	var in []Edge
	for _, e := range g.edges {
		if e.To == id && (relation == "" || e.Relation == relation) {
			in = append(in, e)
		}
	}
	return in
}

// CategoryOf returns the category of a node: the target of its first
// outgoing IS_A edge in store order, or "" if it has none.
func (g *Graph) CategoryOf(id string) string {
	return g.firstTarget(id, RelationIsA)
}

// BrandOf returns the brand of a node: the target of its first outgoing
// HAS_BRAND edge in store order, or "" if it has none.
func (g *Graph) BrandOf(id string) string {
	return g.firstTarget(id, RelationHasBrand)
}

// firstTarget returns the target of the first matching outgoing edge. When a
// node carries several edges of the same relation (malformed data) only the
// first counts.
func (g *Graph) firstTarget(id, relation string) string {
	for _, e := range g.edges {
		if e.From == id && e.Relation == relation {
			return e.To
		}
	}
	return ""
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodesByType returns all nodes of the given type sorted by name.
func (g *Graph) NodesByType(t NodeType) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Type == t {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Edges returns the edge list in insertion order. The caller must not
// modify it.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// NodeCount returns the number of nodes of the given type, or all nodes when
// the type is empty.
func (g *Graph) NodeCount(t NodeType) int {
	if t == "" {
		return len(g.nodes)
	}
	count := 0
	for _, n := range g.nodes {
		if n.Type == t {
			count++
		}
	}
	return count
}

// EdgeCount returns the total number of edges, duplicates included.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
