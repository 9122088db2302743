// Package config provides configuration management for the glamql CLI.
package config

// Default configuration values.
const (
	// DefaultCatalogFile may be JSON or YAML; the loader accepts both.
	DefaultCatalogFile = "cosmetics_library.json"
	DefaultStateFile   = ".glamql/state.db"
	DefaultHistoryFile = ".glamql/history"
	DefaultImageBase   = "cosmetics_images"
	DefaultOutput      = "table"
)

// Config holds all CLI configuration options.
type Config struct {
	CatalogPath  string `koanf:"catalog_path"`
	StatePath    string `koanf:"state_path"`
	HistoryFile  string `koanf:"history_file"`
	ImageBase    string `koanf:"image_base"`
	Profile      string `koanf:"profile"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}
