package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Rows             int           `json:"rows"`
	Cols             int           `json:"cols"`
	AliveProbability float64       `json:"alive_probability"`
	TickInterval     time.Duration `json:"tick_interval"`
	StartRunning     bool          `json:"start_running"`
	SizeMin          int           `json:"size_min"` // lower bound for regenerated boards, inclusive
	SizeMax          int           `json:"size_max"` // upper bound for regenerated boards, exclusive
	MaxGenerations   int           `json:"max_generations"`
	Seed             int64         `json:"seed"` // 0 means unseeded
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:             30,
		Cols:             40,
		AliveProbability: 0.21,
		TickInterval:     200 * time.Millisecond,
		StartRunning:     false,
		SizeMin:          10,
		SizeMax:          60,
		MaxGenerations:   0,
		Seed:             0,
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the game cannot run without
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("[Config.Validate] grid size must be positive, got %dx%d", c.Rows, c.Cols)
	case c.TickInterval <= 0:
		return errors.Errorf("[Config.Validate] tick interval must be positive, got %v", c.TickInterval)
	case c.SizeMin <= 0 || c.SizeMax <= c.SizeMin:
		return errors.Errorf("[Config.Validate] size range [%d, %d) is empty", c.SizeMin, c.SizeMax)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Config.Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.Float64Var(&c.AliveProbability, "alive", c.AliveProbability, "probability a cell starts alive")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between generations while running")
	fs.BoolVar(&c.StartRunning, "run", c.StartRunning, "start the simulation immediately")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards, 0 for unseeded")
}
