package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gobim/pkg/bim"
)

// Config is the viewer configuration. Every field has a compiled-in
// default; a YAML file overrides individual fields.
type Config struct {
	// MaxFileSize is the size ceiling enforced before decoding starts
	MaxFileSize int64 `yaml:"max_file_size"`

	// AllowedExtensions lists the file extensions accepted for loading
	AllowedExtensions []string `yaml:"allowed_extensions"`

	// ExplodeMax caps the explode slider
	ExplodeMax float64 `yaml:"explode_max"`

	// WatchDebounce collapses file-change bursts during auto-reload
	WatchDebounce time.Duration `yaml:"watch_debounce"`

	// Categories overrides or extends the built-in type-code table
	Categories map[int32]string `yaml:"categories"`
}

// DefaultConfig returns the compiled-in configuration
func DefaultConfig() Config {
	return Config{
		MaxFileSize:       100 << 20, // 100 MB
		AllowedExtensions: []string{".gbm"},
		ExplodeMax:        2.0,
		WatchDebounce:     500 * time.Millisecond,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// CategoryTable returns the built-in table merged with the overrides
func (c Config) CategoryTable() bim.CategoryTable {
	table := bim.DefaultCategories()
	if len(c.Categories) == 0 {
		return table
	}
	return table.Merge(bim.CategoryTable(c.Categories))
}
