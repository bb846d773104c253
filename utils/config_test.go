package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if config.Rows != 5 || config.Cols != 7 || len(config.Cells) != 5 || config.Generations != 1 {
		t.Fatalf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"rows": 8,
		"cols": 9,
		"generations": 4,
		"workers": 2,
		"stop_on_cycle": true,
		"cells": [{"row": 0, "col": 1}],
		"patterns": [{"kind": "glider", "row": 3, "col": 3}]
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Rows != 8 || config.Cols != 9 || config.Generations != 4 || config.Workers != 2 || !config.StopOnCycle {
		t.Fatalf("fields not loaded: %+v", config)
	}
	if len(config.Cells) != 1 || config.Cells[0] != (Cell{Row: 0, Col: 1}) {
		t.Fatalf("cells = %+v, expected [{0 1}]", config.Cells)
	}
	if len(config.Patterns) != 1 || config.Patterns[0].Kind != "glider" {
		t.Fatalf("patterns = %+v", config.Patterns)
	}
	// untouched keys keep their defaults
	if config.FrameRate != 150*time.Millisecond || config.HistorySize != model.DefaultHistorySize {
		t.Fatalf("defaults lost: frame_rate=%v history_size=%d", config.FrameRate, config.HistorySize)
	}
}

func TestLoadConfigDoesNotInheritDemoCells(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"rows": 3, "cols": 3}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(config.Cells) != 0 {
		t.Fatalf("cells = %+v, expected none", config.Cells)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v, expected os.ErrNotExist", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"rows": "five"}`)); err == nil {
		t.Fatalf("malformed file loaded without error")
	}
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"negative generations": func(c *Config) { c.Generations = -1 },
		"negative workers":     func(c *Config) { c.Workers = -2 },
		"negative history":     func(c *Config) { c.HistorySize = -1 },
		"negative frame rate":  func(c *Config) { c.FrameRate = -time.Second },
		"density above one":    func(c *Config) { c.RandomDensity = 1.5 },
		"negative density":     func(c *Config) { c.RandomDensity = -0.1 },
		"unknown pattern":      func(c *Config) { c.Patterns = []Pattern{{Kind: "pulsar"}} },
	} {
		config := DefaultConfig()
		mutate(&config)
		if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err=%v, expected ErrInvalidConfig", name, err)
		}
	}
}

func TestSeed(t *testing.T) {
	config := DefaultConfig()
	config.Cells = []Cell{{Row: 0, Col: 0}}
	config.Patterns = []Pattern{{Kind: "blinker", Row: 3, Col: 2}}

	g, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := config.Seed(g); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	want := "O......\n" +
		".......\n" +
		".......\n" +
		"..OOO..\n" +
		".......\n"
	if g.Render() != want {
		t.Fatalf("seeded grid:\n%s\nexpected:\n%s", g.Render(), want)
	}

	config.Cells = []Cell{{Row: 5, Col: 0}}
	if err := config.Seed(g); !errors.Is(err, model.ErrOutOfBounds) {
		t.Fatalf("out of range cell err=%v, expected ErrOutOfBounds", err)
	}
}
