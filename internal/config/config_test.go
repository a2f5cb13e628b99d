package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	root := "/tmp/catalog"
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"shelf", ShelfPath(root), "/tmp/catalog/.shelfgraph"},
		{"config", ConfigPath(root), "/tmp/catalog/.shelfgraph/config.json"},
		{"nodes", NodesPath(root), "/tmp/catalog/.shelfgraph/nodes.jsonl"},
		{"edges", EdgesPath(root), "/tmp/catalog/.shelfgraph/edges.jsonl"},
		{"db", DBPath(root), "/tmp/catalog/.shelfgraph/cache/catalog.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestIsRepository(t *testing.T) {
	dir := t.TempDir()
	if IsRepository(dir) {
		t.Error("empty dir should not be a repository")
	}

	if err := os.MkdirAll(ShelfPath(dir), 0755); err != nil {
		t.Fatal(err)
	}
	if !IsRepository(dir) {
		t.Error("dir with .shelfgraph should be a repository")
	}
}

func TestFindRepository(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ShelfPath(root), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("walks up from nested dir", func(t *testing.T) {
		got, err := FindRepository(nested)
		if err != nil {
			t.Fatalf("FindRepository: %v", err)
		}
		// TempDir may sit behind a symlink; compare resolved paths.
		wantResolved, _ := filepath.EvalSymlinks(root)
		gotResolved, _ := filepath.EvalSymlinks(got)
		if gotResolved != wantResolved {
			t.Errorf("got %q, want %q", got, root)
		}
	})

	t.Run("errors outside a repository", func(t *testing.T) {
		if _, err := FindRepository(t.TempDir()); !errors.Is(err, ErrNoRepository) {
			t.Errorf("err = %v, want ErrNoRepository", err)
		}
	})
}

func TestLoadSave(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ShelfPath(root), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("missing config yields defaults", func(t *testing.T) {
		cfg, err := Load(root)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Currency != DefaultCurrency {
			t.Errorf("Currency = %q, want %q", cfg.Currency, DefaultCurrency)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		in := &Config{Currency: "$", FeedURL: "https://feed.example.com/catalog"}
		if err := in.Save(root); err != nil {
			t.Fatalf("Save: %v", err)
		}

		out, err := Load(root)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if out.Currency != "$" || out.FeedURL != in.FeedURL {
			t.Errorf("got %+v, want %+v", out, in)
		}
	})
}

func TestGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	ResetGlobalConfigCache()
	t.Cleanup(ResetGlobalConfigCache)

	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadGlobalConfig()
		if err != nil {
			t.Fatalf("LoadGlobalConfig: %v", err)
		}
		if cfg.FeedURL != "" || cfg.CatalogPath != "" {
			t.Errorf("got %+v, want empty", cfg)
		}
	})

	t.Run("parses yaml", func(t *testing.T) {
		ResetGlobalConfigCache()
		path := GlobalConfigPath()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		content := "feed_url: https://feed.example.com/catalog\nfeed_api_key: secret\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadGlobalConfig()
		if err != nil {
			t.Fatalf("LoadGlobalConfig: %v", err)
		}
		if cfg.FeedURL != "https://feed.example.com/catalog" || cfg.FeedAPIKey != "secret" {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SHELF_FEED_URL", "https://override.example.com")
		if got := GetFeedURL(); got != "https://override.example.com" {
			t.Errorf("GetFeedURL = %q, want override", got)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/catalog"); got != filepath.Join(home, "catalog") {
		t.Errorf("got %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("got %q, want unchanged", got)
	}
}
