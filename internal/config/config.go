// Package config loads the naja configuration file. Every field has a
// default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration (~/.naja/config.toml).
type Config struct {
	// DBPath is the SQLite file holding all local state. Empty means
	// the default location under the home directory.
	DBPath string `toml:"db_path"`

	API     APIConfig     `toml:"api"`
	Content ContentConfig `toml:"content"`
}

// APIConfig configures the optional local HTTP API (`naja serve`).
type APIConfig struct {
	Addr    string `toml:"addr"`
	Metrics bool   `toml:"metrics"`
}

// ContentConfig points at the external read-only content APIs.
type ContentConfig struct {
	QuranAPI   string `toml:"quran_api"`
	AladhanAPI string `toml:"aladhan_api"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Addr:    "127.0.0.1:7786",
			Metrics: false,
		},
		Content: ContentConfig{
			QuranAPI:   "https://api.alquran.cloud/v1",
			AladhanAPI: "https://api.aladhan.com/v1",
		},
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".naja", "config.toml"), nil
}

// Load reads the config at path, layering it over defaults. A missing
// file yields pure defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.API.Addr == "" {
		cfg.API.Addr = DefaultConfig().API.Addr
	}
	if cfg.Content.QuranAPI == "" {
		cfg.Content.QuranAPI = DefaultConfig().Content.QuranAPI
	}
	if cfg.Content.AladhanAPI == "" {
		cfg.Content.AladhanAPI = DefaultConfig().Content.AladhanAPI
	}
	return cfg, nil
}
