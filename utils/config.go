package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seeding modes
const (
	ModeRandom  = "random"
	ModePattern = "pattern"
)

// ErrInvalidConfig is returned by Validate for out-of-range driver settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size                int           `json:"size"`
	Mode                string        `json:"mode"`
	AliveProbability    float64       `json:"alive_probability"`
	Pattern             string        `json:"pattern"`
	PatternRow          int           `json:"pattern_row"`
	PatternCol          int           `json:"pattern_col"`
	PatternWrap         bool          `json:"pattern_wrap"`
	Seed                uint64        `json:"seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	RefreshInterval     int           `json:"refresh_interval"` // restart every n generations when auto_restart is set; 0 disables
	Quiet               bool          `json:"quiet"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                100,
		Mode:                ModeRandom,
		AliveProbability:    0.2, // 20% alive, 80% dead
		Pattern:             "glider",
		PatternRow:          1,
		PatternCol:          1,
		FrameRate:           50 * time.Millisecond,
		UseParallel:         true,
		UseMemoryPool:       true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the driver settings; grid size, probability and pattern
// placement are checked when the game is built
func (c Config) Validate() error {
	switch c.Mode {
	case ModeRandom, ModePattern:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown mode %q", c.Mode)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations %d is negative", c.MaxGenerations)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d is negative", c.Workers)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate %v is negative", c.FrameRate)
	}
	if c.RefreshInterval < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] refresh_interval %d is negative", c.RefreshInterval)
	}
	if c.StagnationThreshold < 1 && (c.StopOnStagnation || c.AutoRestart) {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold %d must be positive", c.StagnationThreshold)
	}
	return nil
}
