package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("missing file config = %+v, want defaults", cfg)
	}
	if cfg.API.Addr == "" || cfg.Content.QuranAPI == "" || cfg.Content.AladhanAPI == "" {
		t.Fatalf("defaults incomplete: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
db_path = "/tmp/custom.db"

[api]
addr = "0.0.0.0:9000"
metrics = true

[content]
quran_api = "http://localhost:8081/v1"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db_path = %q", cfg.DBPath)
	}
	if cfg.API.Addr != "0.0.0.0:9000" || !cfg.API.Metrics {
		t.Fatalf("api = %+v", cfg.API)
	}
	if cfg.Content.QuranAPI != "http://localhost:8081/v1" {
		t.Fatalf("quran_api = %q", cfg.Content.QuranAPI)
	}
	// Unset field backfilled from defaults.
	if cfg.Content.AladhanAPI != DefaultConfig().Content.AladhanAPI {
		t.Fatalf("aladhan_api = %q, want default", cfg.Content.AladhanAPI)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is { not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
