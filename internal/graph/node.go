// Package graph defines the in-memory knowledge graph of products,
// categories, and brands used for substitution queries.
package graph

import (
	"encoding/json"
	"fmt"
)

// NodeType tags the kind of entity a node represents.
type NodeType string

const (
	NodeProduct  NodeType = "product"
	NodeCategory NodeType = "category"
	NodeBrand    NodeType = "brand"
)

// ProductData holds the attributes of a product node.
type ProductData struct {
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	InStock    bool     `json:"in_stock"`
	Attributes []string `json:"attributes,omitempty"`
}

// CategoryData holds the attributes of a category node.
type CategoryData struct {
	Name string `json:"name"`
}

// BrandData holds the attributes of a brand node.
type BrandData struct {
	Name string `json:"name"`
}

// Node is a typed entity in the graph. Exactly one of the data pointers is
// set, selected by Type.
type Node struct {
	ID       string
	Type     NodeType
	Product  *ProductData
	Category *CategoryData
	Brand    *BrandData
}

// NewProduct creates a product node.
func NewProduct(id string, data ProductData) *Node {
	return &Node{ID: id, Type: NodeProduct, Product: &data}
}

// NewCategory creates a category node.
func NewCategory(id, name string) *Node {
	return &Node{ID: id, Type: NodeCategory, Category: &CategoryData{Name: name}}
}

// NewBrand creates a brand node.
func NewBrand(id, name string) *Node {
	return &Node{ID: id, Type: NodeBrand, Brand: &BrandData{Name: name}}
}

// Name returns the display name for the node, regardless of type.
func (n *Node) Name() string {
	switch n.Type {
	case NodeProduct:
		if n.Product != nil {
			return n.Product.Name
		}
	case NodeCategory:
		if n.Category != nil {
			return n.Category.Name
		}
	case NodeBrand:
		if n.Brand != nil {
			return n.Brand.Name
		}
	}
	return ""
}

// nodeRecord is the wire form of a node: {id, type, data}.
type nodeRecord struct {
	ID   string          `json:"id"`
	Type NodeType        `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes the node in the {id, type, data} envelope used by the
// loader interface and the JSONL store.
func (n *Node) MarshalJSON() ([]byte, error) {
	var data any
	switch n.Type {
	case NodeProduct:
		data = n.Product
	case NodeCategory:
		data = n.Category
	case NodeBrand:
		data = n.Brand
	default:
		return nil, fmt.Errorf("unknown node type %q", n.Type)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(nodeRecord{ID: n.ID, Type: n.Type, Data: raw})
}

// UnmarshalJSON decodes the {id, type, data} envelope, selecting the data
// variant by the type tag.
func (n *Node) UnmarshalJSON(b []byte) error {
	var rec nodeRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}

	n.ID = rec.ID
	n.Type = rec.Type
	n.Product, n.Category, n.Brand = nil, nil, nil

	switch rec.Type {
	case NodeProduct:
		n.Product = &ProductData{}
		return json.Unmarshal(rec.Data, n.Product)
	case NodeCategory:
		n.Category = &CategoryData{}
		return json.Unmarshal(rec.Data, n.Category)
	case NodeBrand:
		n.Brand = &BrandData{}
		return json.Unmarshal(rec.Data, n.Brand)
	default:
		return fmt.Errorf("unknown node type %q", rec.Type)
	}
}
