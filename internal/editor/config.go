package editor

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds editor configuration options.
type Config struct {
	// Viewport dimensions in grid cells.
	GridWidth  int `mapstructure:"grid_width"`
	GridHeight int `mapstructure:"grid_height"`

	// Structure brush footprint.
	StructureWidth  int `mapstructure:"structure_width"`
	StructureHeight int `mapstructure:"structure_height"`

	// Tileset file loaded from the embedded data.
	Tileset string `mapstructure:"tileset"`

	// Seed for demo seeding. A seed of 0 disables seeding.
	Seed int64 `mapstructure:"seed"`

	// Clustering overrides. When either is negative the values authored
	// in the tileset are used.
	Threshold         float64 `mapstructure:"threshold"`
	NeighborThreshold float64 `mapstructure:"neighbor_threshold"`
}

// LoadConfig reads configuration from an optional mosaic.yaml in the
// working directory, with MOSAIC_* environment variables taking
// precedence over the file and defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("mosaic")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("grid_width", 60)
	v.SetDefault("grid_height", 22)
	v.SetDefault("structure_width", 3)
	v.SetDefault("structure_height", 2)
	v.SetDefault("tileset", "terrain.json")
	v.SetDefault("seed", int64(0))
	v.SetDefault("threshold", -1.0)
	v.SetDefault("neighbor_threshold", -1.0)

	v.SetEnvPrefix("MOSAIC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.StructureWidth <= 0 || cfg.StructureHeight <= 0 {
		return nil, fmt.Errorf("invalid structure brush %dx%d", cfg.StructureWidth, cfg.StructureHeight)
	}
	return &cfg, nil
}
