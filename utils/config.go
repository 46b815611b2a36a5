package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a run
type Config struct {
	Seed                uint64        `json:"seed" yaml:"seed"`
	Iterations          int           `json:"iterations" yaml:"iterations"`
	Workers             int           `json:"workers" yaml:"workers"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Animate             bool          `json:"animate" yaml:"animate"`
	Debug               bool          `json:"debug" yaml:"debug"`
	ShowBoards          bool          `json:"show_boards" yaml:"show_boards"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Seed:                383289243938892398,
		Iterations:          4096,
		Workers:             runtime.NumCPU(),
		FrameRate:           50 * time.Millisecond,
		Animate:             false,
		Debug:               false,
		ShowBoards:          true,
		UseMemoryPool:       true,
		AutoRestart:         false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the harness cannot run with
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.AutoRestart && c.StagnationThreshold <= 0 {
		return errors.New("stagnation_threshold must be positive when auto_restart is set")
	}
	return nil
}
