package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

// loadConfig reads the config file, falling back to the built-in demo when it does not exist
func loadConfig(path string, out io.Writer) (utils.Config, error) {
	config, err := utils.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "Using default configuration (%s not found)\n", path)
		return utils.DefaultConfig(), nil
	}
	if err != nil {
		return config, err
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// initializeGame builds and seeds the grid
func initializeGame(config utils.Config) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	grid.SetWorkers(config.Workers)

	if err = config.Seed(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// displayGameStatus shows the status line and the grid
func displayGameStatus(renderer *model.TerminalRenderer, grid *model.Grid) error {
	if err := renderer.Header(grid); err != nil {
		return err
	}
	return renderer.Display(grid)
}

// checkStopConditions determines if the run should end before the generation limit
func checkStopConditions(grid *model.Grid, history *model.History, config utils.Config) (bool, string) {
	if !config.StopOnCycle {
		return false, ""
	}
	if model.Extinct(grid) {
		return true, "extinction"
	}
	if period, ok := history.Repeats(grid); ok {
		if period == 1 {
			return true, "still life"
		}
		return true, fmt.Sprintf("oscillator with period %d", period)
	}
	return false, ""
}

// simulate advances the grid up to config.Generations times
func simulate(
	config utils.Config,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	stderr io.Writer,
	stop <-chan os.Signal,
) error {
	history := model.NewHistory(config.HistorySize)

	for range config.Generations {
		select {
		case <-stop:
			fmt.Fprintln(renderer.Out, "\nShutting down gracefully...")
			return nil
		default:
		}

		history.Record(grid)
		grid.Advance()
		stats.Update(grid.Generation(), grid.Population())

		if config.Animate {
			// a terminal that cannot be cleared still gets the frame
			if err := renderer.Clear(); err != nil {
				fmt.Fprintln(stderr, "Error clearing terminal:", err)
			}
			if err := displayGameStatus(renderer, grid); err != nil {
				return err
			}
			time.Sleep(config.FrameRate)
		}

		if done, reason := checkStopConditions(grid, history, config); done {
			fmt.Fprintf(renderer.Out, "Stopping at generation %d: %s\n", grid.Generation(), reason)
			return nil
		}
	}
	return nil
}
