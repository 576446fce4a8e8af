package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if !cfg.LiveSearch {
		t.Error("expected live_search to default to true")
	}
	if cfg.MaxQueryLength != 256 {
		t.Errorf("expected default max_query_length 256, got %d", cfg.MaxQueryLength)
	}
	if cfg.HighlightClass != "hl" {
		t.Errorf("expected default highlight_class %q, got %q", "hl", cfg.HighlightClass)
	}
	if len(cfg.ContentInclude) != 2 {
		t.Errorf("expected 2 default include patterns, got %d", len(cfg.ContentInclude))
	}
}

func TestDefaultConfigDoesNotShareInclude(t *testing.T) {
	a := DefaultConfig()
	a.ContentInclude[0] = "changed"
	if DefaultContentInclude[0] == "changed" {
		t.Error("DefaultConfig should copy DefaultContentInclude")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.casefile.yml")

	original := DefaultConfig()
	original.SiteName = "Trial Notes"
	original.ContentDir = dir
	original.ContentInclude = []string{"pages/*.yaml"}
	original.OutputDir = "public"
	original.Port = 9090
	original.LiveSearch = false
	original.HighlightClass = "match"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.LiveSearch != original.LiveSearch {
		t.Errorf("live_search: got %v, want %v", loaded.LiveSearch, original.LiveSearch)
	}
	if loaded.HighlightClass != original.HighlightClass {
		t.Errorf("highlight_class: got %q, want %q", loaded.HighlightClass, original.HighlightClass)
	}
	if len(loaded.ContentInclude) != 1 || loaded.ContentInclude[0] != "pages/*.yaml" {
		t.Errorf("content_include: got %v, want %v", loaded.ContentInclude, original.ContentInclude)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("loaded config should be valid, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("CASEFILE_PORT", "9191")
	t.Setenv("CASEFILE_HIGHLIGHT_CLASS", "found")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got %d, want %d", loaded.Port, 9191)
	}
	if loaded.HighlightClass != "found" {
		t.Errorf("env override failed: got %q, want %q", loaded.HighlightClass, "found")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("port: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"zero max_query_length", func(c *Config) { c.MaxQueryLength = 0 }},
		{"empty highlight_class", func(c *Config) { c.HighlightClass = "" }},
		{"highlight_class with space", func(c *Config) { c.HighlightClass = "hl bold" }},
		{"highlight_class with quote", func(c *Config) { c.HighlightClass = `hl"` }},
		{"missing content_dir", func(c *Config) { c.ContentDir = filepath.Join(dir, "missing") }},
		{"content_dir is a file", func(c *Config) { c.ContentDir = file }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 3000
	if got := cfg.Addr(); got != ":3000" {
		t.Errorf("Addr() = %q, want %q", got, ":3000")
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"0", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "http", "-1", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.yaml", []string{"**/*.yaml"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
