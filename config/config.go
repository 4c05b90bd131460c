package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tessellate/logger"
)

// Config holds top-level configuration for a tessellate run.
type Config struct {
	Generate    GenerateConfig    `yaml:"generate"`
	Store       StoreConfig       `yaml:"store"`
	EventStream EventStreamConfig `yaml:"event_stream"`
	Logging     logger.Config     `yaml:"logging"`
}

// GenerateConfig describes the grid a solve should produce.
type GenerateConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Seed         int64  `yaml:"seed"` // 0 = derive a seed from the current time
	TileDataPath string `yaml:"tile_data_path"`
}

// StoreConfig controls persistence of completed maps.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// EventStreamConfig controls the optional websocket broadcast of a solve's
// visual events.
type EventStreamConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the configuration used when a run supplies no file
// or the file omits a section entirely.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			Width:        20,
			Height:       20,
			Seed:         0,
			TileDataPath: "data/tiles.json",
		},
		Store: StoreConfig{
			Enabled: true,
			DBPath:  "data/tessellate.db",
		},
		EventStream: EventStreamConfig{
			Enabled: false,
			Addr:    ":8080",
			Path:    "/events",
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads YAML configuration from path, merging it over DefaultConfig.
// A missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}
