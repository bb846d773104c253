package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-torus/model"
	"github.com/sheikhrachel/go-torus/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration")
	generations := flag.Int("generations", -1, "generations to run, overriding the configuration when >= 0")
	flag.Parse()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	os.Exit(run(*configPath, *generations, os.Stdout, os.Stderr, sigChan))
}

// run executes one simulation and returns the process exit code
func run(configPath string, generations int, stdout, stderr io.Writer, stop <-chan os.Signal) int {
	config, err := loadConfig(configPath, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading configuration:", err)
		return 1
	}
	if generations >= 0 {
		config.Generations = generations
	}

	grid, err := initializeGame(config)
	if err != nil {
		fmt.Fprintln(stderr, "Error creating grid:", err)
		return 1
	}

	var (
		renderer = &model.TerminalRenderer{Out: stdout}
		stats    = utils.NewStats()
	)
	stats.Update(grid.Generation(), grid.Population())

	if err = displayGameStatus(renderer, grid); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout)

	if err = simulate(config, grid, renderer, stats, stderr, stop); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if !config.Animate {
		if err = displayGameStatus(renderer, grid); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	fmt.Fprintln(stdout, stats.Summary())
	return 0
}
