package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopkit/shelfgraph/internal/graph"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ProductInfo is the product detail included in command responses.
type ProductInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	InStock    bool     `json:"in_stock"`
	Attributes []string `json:"attributes,omitempty"`
}

// productInfo converts a product node for output.
func productInfo(n *graph.Node) ProductInfo {
	return ProductInfo{
		ID:         n.ID,
		Name:       n.Product.Name,
		Price:      n.Product.Price,
		InStock:    n.Product.InStock,
		Attributes: n.Product.Attributes,
	}
}
