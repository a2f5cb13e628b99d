// Package config handles catalog repository and global configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRepository is returned when no .shelfgraph directory is found in the
// starting directory or any of its parents.
var ErrNoRepository = errors.New("not in a shelfgraph repository (no .shelfgraph directory found)")

// Config represents repository configuration stored in .shelfgraph/config.json.
type Config struct {
	Currency string `json:"currency,omitempty"` // Price symbol for human output, default "₹"
	FeedURL  string `json:"feed_url,omitempty"` // Supplier catalog feed endpoint
}

const (
	ShelfDir   = ".shelfgraph"
	ConfigFile = "config.json"
	NodesFile  = "nodes.jsonl"
	EdgesFile  = "edges.jsonl"
	CacheDir   = "cache"
	DBFile     = "catalog.db"
)

// DefaultCurrency is the price symbol used when none is configured.
const DefaultCurrency = "₹"

// ShelfPath returns the path to the .shelfgraph directory from a root path.
func ShelfPath(root string) string {
	return filepath.Join(root, ShelfDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ShelfDir, ConfigFile)
}

// NodesPath returns the path to nodes.jsonl from a root path.
func NodesPath(root string) string {
	return filepath.Join(root, ShelfDir, NodesFile)
}

// EdgesPath returns the path to edges.jsonl from a root path.
func EdgesPath(root string) string {
	return filepath.Join(root, ShelfDir, EdgesFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, ShelfDir, CacheDir)
}

// DBPath returns the path to catalog.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, ShelfDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a shelfgraph repository.
func IsRepository(root string) bool {
	info, err := os.Stat(ShelfPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a shelfgraph
// repository. Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoRepository
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root. A missing
// config file yields defaults, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Currency: DefaultCurrency}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
