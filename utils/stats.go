package utils

import (
	"fmt"
	"time"
)

// Stats summarises a run
type Stats struct {
	StartTime         time.Time
	Generations       int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int) {
	s.Generations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary returns a one-line report of the run
func (s *Stats) Summary() string {
	return fmt.Sprintf("Final stats: %d generations | Living: %d | Peak: %d | Avg Pop: %.1f | Runtime: %.1fs",
		s.Generations, s.Population, s.PeakPopulation, s.AveragePopulation, time.Since(s.StartTime).Seconds())
}
