package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a run
type Config struct {
	Width               uint32        `json:"width"`
	Height              uint32        `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Seed                string        `json:"seed"`
	PerlinThreshold     float64       `json:"perlin_threshold"`
	RandomSeed          int64         `json:"random_seed"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	ClearScreen         bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Seed:                "default",
		PerlinThreshold:     0.1,
		RandomSeed:          42,
		UseMemoryPool:       true,
		StopOnStagnation:    true,
		StagnationThreshold: 5,
		ClearScreen:         true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the universe cannot run with
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be non-zero, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}
