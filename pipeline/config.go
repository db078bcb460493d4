package pipeline

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/pigment/imaging/bitmap"
)

// Config drives one pipeline run. It is read from a TOML file.
type Config struct {
	// Input is the source image path (PNG, JPEG, BMP, TIFF or Radiance HDR).
	Input string `toml:"input"`
	// OutputDir receives the exported files.
	OutputDir string `toml:"output_dir"`
	// LevelCount is the number of mip levels to generate. Zero means
	// the full chain down to 1x1.
	LevelCount uint32 `toml:"level_count"`
	// Filter selects the resampling kernel: box, triangle,
	// catmull-rom, mitchell or lanczos3.
	Filter string `toml:"filter"`
	// Watch keeps the pipeline running and re-exports whenever the
	// input file changes.
	Watch bool `toml:"watch"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

var filterNames = map[string]bitmap.Filter{
	"":            bitmap.FilterDefault,
	"default":     bitmap.FilterDefault,
	"box":         bitmap.FilterBox,
	"triangle":    bitmap.FilterTriangle,
	"catmull-rom": bitmap.FilterCatmullRom,
	"mitchell":    bitmap.FilterMitchell,
	"lanczos3":    bitmap.FilterLanczos3,
}

// LoadConfig reads and validates a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		OutputDir: "out",
		LogLevel:  "info",
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("config: input is required")
	}
	if _, ok := filterNames[cfg.Filter]; !ok {
		return nil, fmt.Errorf("config: unknown filter %q", cfg.Filter)
	}
	return cfg, nil
}

// ResampleFilter returns the kernel named by the config.
func (c *Config) ResampleFilter() bitmap.Filter {
	return filterNames[c.Filter]
}
