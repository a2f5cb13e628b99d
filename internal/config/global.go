package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/shelf/config.yml.
type GlobalConfig struct {
	CatalogPath string `yaml:"catalog_path,omitempty"` // Default repository location
	FeedURL     string `yaml:"feed_url,omitempty"`     // Supplier feed endpoint
	FeedAPIKey  string `yaml:"feed_api_key,omitempty"` // Supplier feed API key
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "shelf"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/shelf/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.CatalogPath != "" {
		cfg.CatalogPath = ExpandPath(cfg.CatalogPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetCatalogPath returns the default repository path from global config.
func GetCatalogPath() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.CatalogPath
}

// GetFeedURL returns the supplier feed URL, preferring the environment over
// global config.
func GetFeedURL() string {
	if url := os.Getenv("SHELF_FEED_URL"); url != "" {
		return url
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.FeedURL
}

// GetFeedAPIKey returns the supplier feed API key, preferring the
// environment over global config.
func GetFeedAPIKey() string {
	if key := os.Getenv("SHELF_FEED_API_KEY"); key != "" {
		return key
	}
	cfg, _ := LoadGlobalConfig()
	return cfg.FeedAPIKey
}
