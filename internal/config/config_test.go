package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cube.Size != 3 || cfg.Cube.ScrambleLength != 25 {
		t.Errorf("Defaults = %+v", cfg.Cube)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[cube]
scramble_length = 40

[database]
path = "/tmp/custom.db"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cube.ScrambleLength != 40 {
		t.Errorf("scramble_length = %d, want 40", cfg.Cube.ScrambleLength)
	}
	if cfg.Cube.Size != 3 {
		t.Errorf("size should keep its default, got %d", cfg.Cube.Size)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cube]\nsize = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("size = 1 should fail validation")
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml at all ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Malformed TOML should fail")
	}
}
