// Package storage handles catalog persistence in JSONL and SQLite formats.
// Nodes and edges live in git-versionable JSONL; an ephemeral SQLite cache
// serves list and stats queries.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line). Shared across all JSONL file readers.
const MaxJSONLLineCapacity = 1024 * 1024

// ReadNodes reads all nodes from a JSONL file. A missing file yields an
// empty slice.
func ReadNodes(path string) ([]*graph.Node, error) {
	var nodes []*graph.Node
	err := readLines(path, "nodes", func(line []byte) error {
		var n graph.Node
		if err := json.Unmarshal(line, &n); err != nil {
			return err
		}
		nodes = append(nodes, &n)
		return nil
	})
	return nodes, err
}

// ReadEdges reads all edges from a JSONL file. A missing file yields an
// empty slice.
func ReadEdges(path string) ([]graph.Edge, error) {
	var edges []graph.Edge
	err := readLines(path, "edges", func(line []byte) error {
		var e graph.Edge
		if err := json.Unmarshal(line, &e); err != nil {
			return err
		}
		edges = append(edges, e)
		return nil
	})
	return edges, err
}

// readLines applies fn to each non-empty line of a JSONL file.
func readLines(path, kind string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s file: %w", kind, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("parsing %s line %d: %w", kind, lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s file: %w", kind, err)
	}
	return nil
}

// WriteNodes writes all nodes to a JSONL file, replacing existing content.
func WriteNodes(path string, nodes []*graph.Node) error {
	return writeLines(path, "node", len(nodes), func(i int) (any, error) {
		return nodes[i], nil
	})
}

// WriteEdges writes all edges to a JSONL file, replacing existing content.
func WriteEdges(path string, edges []graph.Edge) error {
	return writeLines(path, "edge", len(edges), func(i int) (any, error) {
		return edges[i], nil
	})
}

// writeLines marshals n records to a JSONL file, one per line.
func writeLines(path, kind string, n int, record func(i int) (any, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %ss file: %w", kind, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		rec, err := record(i)
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding %s %d: %w", kind, i, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing %s %d: %w", kind, i, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	return w.Flush()
}

// LoadGraph builds an in-memory graph from the nodes and edges JSONL files,
// applying nodes first, then edges, in file order.
func LoadGraph(nodesPath, edgesPath string) (*graph.Graph, error) {
	nodes, err := ReadNodes(nodesPath)
	if err != nil {
		return nil, err
	}
	edges, err := ReadEdges(edgesPath)
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddWeightedEdge(e.From, e.To, e.Relation, e.Weight)
	}
	return g, nil
}

// SaveGraph writes a graph out to the nodes and edges JSONL files.
func SaveGraph(nodesPath, edgesPath string, g *graph.Graph) error {
	if err := WriteNodes(nodesPath, g.Nodes()); err != nil {
		return err
	}
	return WriteEdges(edgesPath, g.Edges())
}
