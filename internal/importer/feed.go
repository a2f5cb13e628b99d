// Package importer brings external catalog data into the store: a supplier
// JSON feed over HTTP and PDF price lists.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopkit/shelfgraph/internal/graph"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// FeedRateLimit is 5 requests per second, to stay polite with supplier
	// endpoints when fetching paginated feeds.
	FeedRateLimit = 5.0
)

// FeedClient is a rate-limited HTTP client for a supplier catalog feed. The
// feed serves the same {nodes, edges} document the loader consumes.
type FeedClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
}

// FeedOption configures a FeedClient.
type FeedOption func(*FeedClient)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) FeedOption {
	return func(c *FeedClient) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) FeedOption {
	return func(c *FeedClient) {
		c.httpClient = hc
	}
}

// NewFeedClient creates a client for the given feed URL.
func NewFeedClient(baseURL string, opts ...FeedOption) *FeedClient {
	c := &FeedClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(FeedRateLimit), 1),
		baseURL:    baseURL,
	}

	if key := os.Getenv("SHELF_FEED_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// feedDocument is the wire form served by the feed.
type feedDocument struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// Fetch downloads the catalog document from the feed.
func (c *FeedClient) Fetch(ctx context.Context) ([]*graph.Node, []graph.Edge, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("feed returned %d: %s", resp.StatusCode, string(body))
	}

	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("parsing feed: %w", err)
	}

	nodes := make([]*graph.Node, len(doc.Nodes))
	for i := range doc.Nodes {
		nodes[i] = &doc.Nodes[i]
	}
	return nodes, doc.Edges, nil
}

// Merge applies fetched nodes and edges to a graph. Nodes overwrite by ID
// (last write wins, matching the loader contract); edges already present with
// identical endpoints, relation, and weight are skipped so that re-importing
// the same feed doesn't pile up duplicates.
func Merge(g *graph.Graph, nodes []*graph.Node, edges []graph.Edge) (added int) {
	for _, n := range nodes {
		g.AddNode(n)
	}

	existing := make(map[graph.Edge]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		existing[e] = true
	}
	for _, e := range edges {
		if existing[e] {
			continue
		}
		g.AddWeightedEdge(e.From, e.To, e.Relation, e.Weight)
		existing[e] = true
		added++
	}
	return added
}
