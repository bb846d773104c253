package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Cell is a seeded coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pattern is a named pattern anchored at a coordinate
type Pattern struct {
	Kind string `json:"kind"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Config holds the configuration for a run
type Config struct {
	Rows        int           `json:"rows"`
	Cols        int           `json:"cols"`
	Generations int           `json:"generations"`
	Workers     int           `json:"workers"`
	FrameRate   time.Duration `json:"frame_rate"`
	Animate     bool          `json:"animate"`
	StopOnCycle bool          `json:"stop_on_cycle"`
	HistorySize int           `json:"history_size"`

	Cells    []Cell    `json:"cells"`
	Patterns []Pattern `json:"patterns"`

	RandomSeed    int64   `json:"random_seed"`
	RandomDensity float64 `json:"random_density"`

	UseNoise       bool    `json:"use_noise"`
	NoiseSeed      int64   `json:"noise_seed"`
	NoiseThreshold float64 `json:"noise_threshold"`
}

// DefaultConfig returns the classic demo: a 5x7 board seeded with five cells, advanced once
func DefaultConfig() Config {
	return Config{
		Rows:        5,
		Cols:        7,
		Generations: 1,
		Workers:     1,
		FrameRate:   150 * time.Millisecond,
		HistorySize: model.DefaultHistorySize,
		Cells: []Cell{
			{Row: 1, Col: 2},
			{Row: 1, Col: 4},
			{Row: 2, Col: 2},
			{Row: 2, Col: 3},
			{Row: 2, Col: 4},
		},
		NoiseThreshold: 0.1,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults.
// The demo cells are not inherited: a file seeds only what it lists.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	config.Cells = nil

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks everything except the grid dimensions, which NewGrid owns
func (c Config) Validate() error {
	switch {
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations=%d", c.Generations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers=%d", c.Workers)
	case c.HistorySize < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size=%d", c.HistorySize)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate=%v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density=%v outside [0,1]", c.RandomDensity)
	}
	for _, p := range c.Patterns {
		if !model.IsPattern(p.Kind) {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", p.Kind)
		}
	}
	return nil
}

// Seed applies the configured cells, patterns, random fill and noise to g, in that order
func (c Config) Seed(g *model.Grid) error {
	for _, cell := range c.Cells {
		if err := g.SetAlive(cell.Row, cell.Col); err != nil {
			return errors.Wrap(err, "[Seed] cells")
		}
	}
	for _, p := range c.Patterns {
		if err := model.ApplyPattern(g, p.Kind, p.Row, p.Col); err != nil {
			return errors.Wrap(err, "[Seed] patterns")
		}
	}
	if c.RandomDensity > 0 {
		model.Randomize(g, c.RandomSeed, c.RandomDensity)
	}
	if c.UseNoise {
		model.SeedNoise(g, c.NoiseSeed, c.NoiseThreshold)
	}
	return nil
}
