package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopkit/shelfgraph/internal/graph"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite catalog cache.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			price REAL,
			in_stock INTEGER,
			attributes_json TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(type);
		CREATE INDEX IF NOT EXISTS idx_nodes_name ON nodes(name);

		CREATE TABLE IF NOT EXISTS edges (
			from_id TEXT NOT NULL,
			to_id TEXT NOT NULL,
			relation TEXT NOT NULL,
			weight REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_edges_from ON edges(from_id);
		CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_id);
		CREATE INDEX IF NOT EXISTS idx_edges_relation ON edges(relation);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the cache and repopulates it from the JSONL files.
// Returns the number of nodes and edges inserted.
func (d *DB) Rebuild(nodesPath, edgesPath string) (int, int, error) {
	nodes, err := ReadNodes(nodesPath)
	if err != nil {
		return 0, 0, fmt.Errorf("reading nodes JSONL: %w", err)
	}
	edges, err := ReadEdges(edgesPath)
	if err != nil {
		return 0, 0, fmt.Errorf("reading edges JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM nodes"); err != nil {
		return 0, 0, fmt.Errorf("clearing nodes table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM edges"); err != nil {
		return 0, 0, fmt.Errorf("clearing edges table: %w", err)
	}

	nodeStmt, err := d.db.Prepare(`
		INSERT OR REPLACE INTO nodes (id, type, name, price, in_stock, attributes_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing nodes insert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range nodes {
		var price any
		var inStock any
		var attrsJSON any
		if n.Type == graph.NodeProduct && n.Product != nil {
			price = n.Product.Price
			inStock = boolToInt(n.Product.InStock)
			data, err := json.Marshal(n.Product.Attributes)
			if err != nil {
				return 0, 0, fmt.Errorf("encoding attributes for %s: %w", n.ID, err)
			}
			attrsJSON = string(data)
		}
		if _, err := nodeStmt.Exec(n.ID, string(n.Type), n.Name(), price, inStock, attrsJSON); err != nil {
			return 0, 0, fmt.Errorf("inserting node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := d.db.Prepare(`
		INSERT INTO edges (from_id, to_id, relation, weight)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing edges insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range edges {
		if _, err := edgeStmt.Exec(e.From, e.To, e.Relation, e.Weight); err != nil {
			return 0, 0, fmt.Errorf("inserting edge: %w", err)
		}
	}

	return len(nodes), len(edges), nil
}

// ProductRow is a product as stored in the cache.
type ProductRow struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	InStock    bool     `json:"in_stock"`
	Attributes []string `json:"attributes,omitempty"`
}

// GetProducts returns products ordered by name, optionally restricted to
// those in stock.
func (d *DB) GetProducts(inStockOnly bool) ([]ProductRow, error) {
	query := `
		SELECT id, name, price, in_stock, attributes_json
		FROM nodes
		WHERE type = 'product'
	`
	if inStockOnly {
		query += " AND in_stock = 1"
	}
	query += " ORDER BY name"

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetProductsWithAttribute returns in-order products carrying the given
// attribute tag.
func (d *DB) GetProductsWithAttribute(tag string) ([]ProductRow, error) {
	products, err := d.GetProducts(false)
	if err != nil {
		return nil, err
	}

	var out []ProductRow
	for _, p := range products {
		for _, a := range p.Attributes {
			if a == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

// CountByType returns the number of nodes per type.
func (d *DB) CountByType() (map[string]int, error) {
	rows, err := d.db.Query("SELECT type, COUNT(*) FROM nodes GROUP BY type")
	if err != nil {
		return nil, fmt.Errorf("counting nodes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// CountEdges returns the total number of edges.
func (d *DB) CountEdges() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM edges").Scan(&count)
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// scanProducts scans rows into product rows.
func scanProducts(rows *sql.Rows) ([]ProductRow, error) {
	var products []ProductRow
	for rows.Next() {
		var p ProductRow
		var inStock int
		var attrsJSON sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &inStock, &attrsJSON); err != nil {
			return nil, err
		}
		p.InStock = inStock != 0
		if attrsJSON.Valid && attrsJSON.String != "" {
			if err := json.Unmarshal([]byte(attrsJSON.String), &p.Attributes); err != nil {
				return nil, fmt.Errorf("parsing attributes for %s: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
